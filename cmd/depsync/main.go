// Package main is the entry point for the depsync tool.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/depsync/cmd/depsync/commands"
	"go.trai.ch/depsync/internal/adapters/config"
	"go.trai.ch/depsync/internal/adapters/logger"
	"go.trai.ch/depsync/internal/adapters/manifest"
	"go.trai.ch/depsync/internal/app"
	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
)

// Exit codes. Drift and unsafe-rewrite outcomes are distinguished so CI and
// operators can react to them without parsing output.
const (
	exitOK     = 0
	exitError  = 1
	exitDrift  = 2
	exitUnsafe = 3
)

func main() {
	log := logger.New()
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, log))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, log ports.Logger) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application := app.New(
		config.NewLoader(),
		manifest.NewLoader(),
		log,
		stdout,
	)

	logControl, _ := log.(commands.LogControl)
	cli := commands.New(application, logControl)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		log.Error(err)
		switch {
		case errors.Is(err, domain.ErrDriftDetected):
			return exitDrift
		case errors.Is(err, domain.ErrUnsafeRewrite):
			return exitUnsafe
		default:
			return exitError
		}
	}
	return exitOK
}
