// Package main is the entry point for the prebuild CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/prebuild/cmd/prebuild/commands"
	"go.trai.ch/prebuild/internal/app"
	_ "go.trai.ch/prebuild/internal/wiring"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, _, err := graft.ExecuteFor[*app.App](ctx)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(application)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		// zerr prints a report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}
