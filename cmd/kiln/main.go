// Package main is the entry point for the kiln batch builder.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/cmd/kiln/commands"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
	_ "go.trai.ch/kiln/internal/wiring"
)

// Exit codes.
const (
	exitOK = 0
	// exitFailed covers failed profiles and every other error.
	exitFailed = 1
	// exitRestoreFailed means the global build settings were left modified.
	exitRestoreFailed = 2
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() { _ = c.Close() }, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*commands.CLI),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailed
	}
	defer cleanup()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)
	for _, opt := range opts {
		opt(cli)
	}

	// 3. Execution
	return exitCode(cli.Execute(ctx), components)
}

func exitCode(err error, components *app.Components) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrGlobalStateRestore):
		// Already reported by the orchestrator and the batch summary.
		return exitRestoreFailed
	case errors.Is(err, domain.ErrBatchFailed):
		return exitFailed
	default:
		components.Logger.Error(err)
		return exitFailed
	}
}
