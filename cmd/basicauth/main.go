// Package main is the basicauth CLI executable
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/stolasapp/basicauth/internal/command"
)

func main() { os.Exit(run()) }

// run maps command failures to exit code 1. Cobra has already printed the
// error by the time ExecuteContext returns.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := command.RootCommand().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
