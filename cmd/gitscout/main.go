// ABOUTME: Entry point for gitscout
// ABOUTME: Wires config, Gemini dispatcher, GitHub tools, audit store, and the Matrix bridge

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/id"

	"github.com/2389/gitscout/internal/agent"
	"github.com/2389/gitscout/internal/bridge"
	"github.com/2389/gitscout/internal/config"
	"github.com/2389/gitscout/internal/github"
	"github.com/2389/gitscout/internal/llm"
	"github.com/2389/gitscout/internal/store"
	"github.com/2389/gitscout/internal/tools"
)

const banner = `
    ╭──────────────────────────────────╮
    │                                  │
    │   ┏━╸╻╺┳╸┏━┓┏━╸┏━┓╻ ╻╺┳╸         │
    │   ┃╺┓┃ ┃ ┗━┓┃  ┃ ┃┃ ┃ ┃          │
    │   ┗━┛╹ ╹ ┗━┛┗━╸┗━┛┗━┛ ╹          │
    │                                  │
    │    github recruiter assistant    │
    │                                  │
    ╰──────────────────────────────────╯
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	configPath := config.Path()
	dataPath := config.DataDir()

	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config from %s: %w", configPath, err)
	}

	logger := setupLogger(cfg.Logging.Level)
	slog.SetDefault(logger)

	green := color.New(color.FgGreen)
	green.Print("    ▶ ")
	fmt.Printf("Config:     %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("Homeserver: %s\n", cfg.Matrix.Homeserver)
	green.Print("    ▶ ")
	fmt.Printf("User:       %s\n", cfg.Matrix.UserID)
	green.Print("    ▶ ")
	fmt.Printf("Model:      %s\n", cfg.Gemini.Model)
	if cfg.Matrix.RecoveryKey != "" {
		green.Print("    ▶ ")
		fmt.Println("Encryption: enabled")
	}
	fmt.Println()

	if cfg.GitHub.Token == "" {
		logger.Warn("no github token configured, using unauthenticated API with lower rate limits")
	}

	ctx := context.Background()

	// Audit store
	auditStore, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening audit store: %w", err)
	}
	defer auditStore.Close()

	// GitHub tools
	registry := tools.NewRegistry(logger)
	if err := registry.Register(tools.GitHubPack(github.New(cfg.GitHub.Token))...); err != nil {
		return fmt.Errorf("registering tools: %w", err)
	}

	// Gemini dispatcher and agent
	dispatcher, err := llm.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
	if err != nil {
		return fmt.Errorf("creating gemini dispatcher: %w", err)
	}
	ag := agent.New(dispatcher, registry, auditStore, logger)

	// Matrix client and encryption
	client, err := mautrix.NewClient(cfg.Matrix.Homeserver, id.UserID(cfg.Matrix.UserID), cfg.Matrix.AccessToken)
	if err != nil {
		return fmt.Errorf("creating matrix client: %w", err)
	}

	cryptoMgr, err := SetupCrypto(ctx, client, cfg.Matrix.UserID, cfg.Matrix.RecoveryKey, dataPath, logger)
	if err != nil {
		return fmt.Errorf("setting up encryption: %w", err)
	}
	if cryptoMgr != nil {
		defer cryptoMgr.Close()
	}

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	b := bridge.New(cfg, client, ag, logger)
	logger.Info("starting gitscout")
	return b.Run(ctx)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
