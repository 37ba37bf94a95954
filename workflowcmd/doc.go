// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package workflowcmd emits GitHub Actions workflow commands on standard
// output. Workflow commands are magic strings of the form
// "::command parameter=value::message" that the Actions runner interprets to
// create annotations, mask secrets and group log lines.
//
// The package also provides a slog.Handler that renders log records as
// workflow commands, so structured logging surfaces as annotations in the
// workflow run.
package workflowcmd
