package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jobwire/jobwire/internal/client/admin"
	"github.com/jobwire/jobwire/internal/client/api"
	"github.com/jobwire/jobwire/internal/client/cli"
	"github.com/jobwire/jobwire/internal/client/config"
	"github.com/jobwire/jobwire/internal/client/iocli"
	"github.com/jobwire/jobwire/internal/client/jobs"
	"github.com/jobwire/jobwire/internal/client/profile"
	"github.com/jobwire/jobwire/internal/client/session"
	"github.com/jobwire/jobwire/internal/client/storage/boltdb"
	"github.com/jobwire/jobwire/internal/client/view"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags default to the environment values, so a flag always wins.
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.ServerURL, "Server URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	logger := newLogger(cfg.LogLevel)

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL, cfg.ListTimeout)

	sessionService := session.NewService(apiClient, boltStorage, boltStorage, logger)
	gate := view.NewGate(apiClient, logger)
	editor := profile.NewEditor(apiClient, sessionService, logger)
	jobsService := jobs.NewService(apiClient, logger)
	adminService := admin.NewService(apiClient, logger)

	c := cli.New(
		iocli.NewStdio(),
		sessionService,
		gate,
		editor,
		jobsService,
		adminService,
		apiClient,
	)

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
	slog.SetDefault(logger)
	return logger
}

func printVersion() {
	fmt.Printf("JobWire Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
