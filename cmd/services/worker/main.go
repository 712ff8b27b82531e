package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vitalyze/vitalyze/internal/config"
	"github.com/vitalyze/vitalyze/internal/ingest"
	"github.com/vitalyze/vitalyze/internal/logging"
	"github.com/vitalyze/vitalyze/internal/stream"
)

var (
	Version   = "dev"     // Injected via ldflags during build
	GitCommit = "unknown" // Injected via ldflags during build
	BuildTime = "unknown" // Injected via ldflags during build
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobal(logger)
	logger.Info("Worker service starting...",
		"version", Version, "commit", GitCommit, "build time", BuildTime)

	logger.Info("Connecting to Queue", "type", cfg.Queue.Type, "url", cfg.Queue.URL)
	queueClient, err := ingest.NewQueue(cfg.Queue)
	if err != nil {
		logger.Fatal("Failed to connect to Queue", "error", err)
	}
	defer func() { _ = queueClient.Close() }()
	logger.Info("Queue connection established")

	worker := stream.NewWorker(logger, queueClient, cfg.Stream, cfg.Engine.Policy())
	if err := worker.Start(); err != nil {
		logger.Fatal("Failed to start stream worker", "error", err)
	}

	// Wait for interrupt signal to gracefully drain the worker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down worker...")
	if err := worker.Stop(); err != nil {
		logger.Error("Worker shutdown error", "error", err)
	}
	logger.Info("Worker exited")
}
