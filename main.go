// Package main is the entry point for the memocheck CLI application.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/memotools/memocheck/cmd"
)

func main() {
	// Create a context that is cancelled on SIGINT (Ctrl+C) so a validation
	// run against a slow filesystem can be interrupted cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
