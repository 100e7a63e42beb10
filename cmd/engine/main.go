package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"payment-engine/internal/config"
	apperrors "payment-engine/internal/errors"
	"payment-engine/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger. Diagnostics go to stderr; stdout carries only the
	// balances output.
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	logger := slog.New(handler).With("run_id", uuid.New().String())
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("Missing argument", "error", apperrors.ErrMissingInputFile)
		os.Exit(1)
	}
	inputFile := os.Args[1]

	processor := service.NewProcessorService(logger)

	ledgerState, err := processor.ProcessFile(inputFile)
	if err != nil {
		logger.Error("Processing failed", "file", inputFile, "error", err)
		os.Exit(1)
	}

	if err := processor.WriteBalances(os.Stdout, ledgerState); err != nil {
		logger.Error("Failed to write balances", "error", err)
		os.Exit(1)
	}
}
