// Command battle-game starts the authoritative server for the multiplayer
// hex battle game.
//
// The server hosts one match at a time: clients connect over the /ws
// websocket endpoint, queue up in the lobby, and play once someone sends
// start_game. A small REST surface provides a health check and the stub
// user store. Flags control the bind address, config path, debug logging,
// and optional ngrok tunneling for external access during development.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"

	"github.com/Miol-Mor/battle-game/api"
	"github.com/Miol-Mor/battle-game/game/config"
	"github.com/Miol-Mor/battle-game/game/session"
	"github.com/Miol-Mor/battle-game/storage"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Battle Game Server"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	cmd := &cli.Command{
		Name:    "battle-game",
		Usage:   "authoritative server for the hex battle game",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultPath,
				Usage: "path to the JSON config file (created with defaults when missing)",
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "bind address, overrides the config file (e.g. localhost:8088)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "ngrok",
				Usage: "expose the server through an ngrok tunnel",
			},
			&cli.StringFlag{
				Name:  "ngrok-auth",
				Usage: "ngrok auth token (or use NGROK_AUTHTOKEN env var)",
			},
			&cli.StringFlag{
				Name:  "ngrok-domain",
				Usage: "custom ngrok domain (optional)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	log.Printf("Starting %s v%s", AppName, Version)

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	addr := cfg.Address
	if flagAddr := cmd.String("addr"); flagAddr != "" {
		addr = flagAddr
	}
	if envAddr := os.Getenv("ADDRESS"); envAddr != "" && cmd.String("addr") == "" {
		addr = envAddr
	}

	users, err := storage.LoadUserStore(cfg.UsersPath)
	if err != nil {
		return fmt.Errorf("failed to load user store: %w", err)
	}
	log.Printf("User store ready (%d users)", users.Count())

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The session goroutine is the single writer for all game state.
	sess := session.New()
	go sess.Run(runCtx)

	apiServer := api.NewServer(sess, users, cfg.JWTSecret, Version)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      apiServer,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Printf("HTTP server listening on %s", addr)
		log.Printf("WebSocket: ws://%s/ws", addr)
		log.Printf("REST API: http://%s/api/v1", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Check if ngrok should be enabled (from flag or environment)
	ngrokShouldRun := cmd.Bool("ngrok")
	if !ngrokShouldRun {
		if envEnabled := os.Getenv("NGROK_ENABLED"); envEnabled == "true" || envEnabled == "1" {
			ngrokShouldRun = true
		}
	}

	if ngrokShouldRun {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runNgrokTunnel(runCtx, cmd, apiServer)
		}()
	}

	sig := <-stop
	log.Printf("Received signal: %v. Shutting down...", sig)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("Server stopped")
	return nil
}

// runNgrokTunnel serves the same handler through a public ngrok endpoint.
func runNgrokTunnel(ctx context.Context, cmd *cli.Command, handler http.Handler) {
	authToken := cmd.String("ngrok-auth")
	if authToken == "" {
		authToken = os.Getenv("NGROK_AUTHTOKEN")
	}
	if authToken == "" {
		log.Println("WARNING: Ngrok enabled but no auth token provided (use --ngrok-auth or NGROK_AUTHTOKEN env var)")
		return
	}

	log.Println("Starting ngrok tunnel...")

	domain := cmd.String("ngrok-domain")
	if domain == "" {
		domain = os.Getenv("NGROK_DOMAIN")
	}

	var tunnel ngrokConfig.Tunnel
	if domain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(domain))
		log.Printf("Using custom ngrok domain: %s", domain)
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx, tunnel, ngrok.WithAuthtoken(authToken))
	if err != nil {
		log.Printf("Failed to start ngrok tunnel: %v", err)
		return
	}
	defer func() {
		if err := tun.Close(); err != nil {
			log.Printf("Failed to close ngrok tunnel: %v", err)
		}
	}()

	ngrokURL := tun.URL()
	log.Printf("Ngrok tunnel established: %s", ngrokURL)
	log.Printf("  WebSocket (ngrok): %s/ws", ngrokURL)

	if err := http.Serve(tun, handler); err != nil && err != http.ErrServerClosed {
		log.Printf("Ngrok server error: %v", err)
	}
	log.Println("Ngrok tunnel closed")
}
