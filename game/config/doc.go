// Package config loads the server configuration from a JSON file.
//
// A missing config file is not an error: Load writes one with defaults and
// returns it, so a fresh checkout starts with a single command. There is no
// runtime reconfiguration.
package config
