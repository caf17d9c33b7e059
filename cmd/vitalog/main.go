package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/LucasAlmeida-cmd/vitalog/internal/client/api"
	"github.com/LucasAlmeida-cmd/vitalog/internal/client/auth"
	"github.com/LucasAlmeida-cmd/vitalog/internal/client/cli"
	"github.com/LucasAlmeida-cmd/vitalog/internal/client/config"
	"github.com/LucasAlmeida-cmd/vitalog/internal/client/iocli"
	"github.com/LucasAlmeida-cmd/vitalog/internal/client/logs"
	"github.com/LucasAlmeida-cmd/vitalog/internal/client/session"
	"github.com/LucasAlmeida-cmd/vitalog/internal/client/storage/boltdb"
	"github.com/LucasAlmeida-cmd/vitalog/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")

	cfg := config.Load()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	command := args[0]

	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx := context.Background()

	store, err := boltdb.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL, cfg.RequestTimeout, logger)
	authService := auth.NewService(apiClient, logger)

	controller := session.NewController(store, authService, logger)
	if _, err := controller.Initialize(ctx); err != nil {
		// The controller already fell back to the unauthenticated state.
		logger.Warn("session restore failed", "error", err)
	}

	logService := logs.NewService(apiClient, controller, logger)

	app := cli.New(stdio, controller, logService)
	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("VitaLog Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
