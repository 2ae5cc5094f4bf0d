package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "config.json"

// Config is the server configuration.
type Config struct {
	// Address with port, e.g. "localhost:8088".
	Address string `json:"address"`

	// UsersPath is the JSON file backing the user store stub.
	UsersPath string `json:"users_path"`

	// JWTSecret signs login tokens.
	JWTSecret string `json:"jwt_secret"`
}

// Default returns the configuration a fresh install starts with.
func Default() *Config {
	return &Config{
		Address:   "localhost:8088",
		UsersPath: "users.json",
		JWTSecret: "battle-game-dev-secret",
	}
}

// Load reads the configuration from path. When the file does not exist it
// is created with defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.save(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
