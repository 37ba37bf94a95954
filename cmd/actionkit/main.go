// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the actionkit command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/actionkit"
	"github.com/matt-FFFFFF/actionkit/cancellation"
	"github.com/matt-FFFFFF/actionkit/cmd"
	"github.com/matt-FFFFFF/actionkit/internal/ctxlog"
)

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	controller := cancellation.New(cancellation.WithLogger(ctxlog.Logger(ctx)))
	controller.Enable()

	defer controller.Disable()

	ctx, cancel := controller.Context(ctx)
	defer cancel()

	cmd.RootCmd.Version = fmt.Sprintf("%s (commit: %s)", actionkit.Version, actionkit.Commit)

	err := cmd.RootCmd.Run(ctx, os.Args)

	if reqErr := controller.Err(); reqErr != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", reqErr)
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Logger(ctx).Info("command completed successfully")
}
