// Package main is the entry point for the datagaze CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/datagaze-labs/datagaze/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
