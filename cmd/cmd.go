// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/actionkit/cmd/env"
	"github.com/matt-FFFFFF/actionkit/cmd/event"
	"github.com/matt-FFFFFF/actionkit/cmd/summary"
	"github.com/matt-FFFFFF/actionkit/cmd/tree"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		env.EnvCmd,
		event.EventCmd,
		summary.SummaryCmd,
		tree.TreeCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "actionkit",
	Description: `Actionkit is a toolkit for writing GitHub Actions steps in Go.
It speaks the runner's workflow command protocol, reads action inputs and
writes outputs, builds job summaries from YAML reports and handles
cancellation signals so steps can shut down cleanly.`,
	Usage:     "actionkit summary report.yaml",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
