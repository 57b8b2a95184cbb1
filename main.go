package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/stupside/veil/cmd"
)

func main() {
	// Profiles and scripts go to stdout; logs stay on stderr. --debug lowers
	// the level in the root command.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Root().Run(ctx, os.Args); err != nil {
		if cause := context.Cause(ctx); cause != nil {
			slog.InfoContext(ctx, "interrupted", "cause", cause)
			return
		}
		slog.Error("veil failed", "error", err)
		os.Exit(1)
	}
}
