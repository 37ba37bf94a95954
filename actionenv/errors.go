// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package actionenv

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInActionsContext is returned when a required GITHUB_* environment
	// variable is not set, meaning the process is not running inside a
	// GitHub Actions workflow.
	ErrNotInActionsContext = errors.New("not running in a GitHub Actions context")

	// ErrInvalidInput is returned when an input value cannot be parsed as the
	// requested type.
	ErrInvalidInput = errors.New("invalid input value")
)

// newErrNotInActionsContext names the missing environment variable.
func newErrNotInActionsContext(envVar string) error {
	return fmt.Errorf("%w: %s environment variable is not set", ErrNotInActionsContext, envVar)
}

// newErrInvalidInput names the input and the type it failed to parse as.
func newErrInvalidInput(name, value, kind string) error {
	return fmt.Errorf("%w: cannot convert input %q with value %q to %s", ErrInvalidInput, name, value, kind)
}
