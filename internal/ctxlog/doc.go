// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-carried slog logger for the module.
// The log level follows the GitHub Actions debug conventions: setting
// RUNNER_DEBUG=1 or ACTIONS_STEP_DEBUG=true enables debug logging, and
// ACTIONKIT_LOG_LEVEL overrides both with an explicit level
// ("DEBUG", "INFO", "WARN" or "ERROR").
package ctxlog
