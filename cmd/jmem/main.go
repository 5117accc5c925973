// SPDX-FileCopyrightText: Copyright 2025 jikime
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the jmem command-line interface.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jikime/jmem/cmd/jmem/app"
)

func main() {
	// Create a context that will be canceled on signal
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	// Execute the root command with context
	if err := app.NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
