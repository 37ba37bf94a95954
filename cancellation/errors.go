// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cancellation

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
)

// ErrCancellationRequested is the error surfaced to application code after a
// tracked signal has been received and the handler drain has completed.
// Its message names the originating signal.
type ErrCancellationRequested struct {
	sig os.Signal
}

// NewErrCancellationRequested creates a new ErrCancellationRequested for the given signal.
func NewErrCancellationRequested(sig os.Signal) *ErrCancellationRequested {
	return &ErrCancellationRequested{sig: sig}
}

// Error implements the error interface for ErrCancellationRequested.
func (e *ErrCancellationRequested) Error() string {
	return fmt.Sprintf("operation cancelled by %s signal", SignalName(e.sig))
}

// Signal returns the signal that triggered the cancellation.
func (e *ErrCancellationRequested) Signal() os.Signal {
	return e.sig
}

// IsCancellationRequested reports whether err is, or wraps, an ErrCancellationRequested.
func IsCancellationRequested(err error) bool {
	var target *ErrCancellationRequested
	return errors.As(err, &target)
}

// ErrHandlerPanic is the error recorded when a cancellation handler panics
// during a drain. It is constructed with the value that caused the panic.
type ErrHandlerPanic struct {
	v any
}

// NewErrHandlerPanic creates a new ErrHandlerPanic with the given value.
func NewErrHandlerPanic(v any) error {
	return &ErrHandlerPanic{v: v}
}

// Error implements the error interface for ErrHandlerPanic.
func (e *ErrHandlerPanic) Error() string {
	prefix := "cancellation handler panic:"

	switch x := e.v.(type) {
	case string:
		return fmt.Sprintf("%s %s", prefix, x)
	case error:
		return fmt.Sprintf("%s %s", prefix, x.Error())
	default:
		return fmt.Sprintf("%s %v", prefix, x)
	}
}

var signalNames = map[syscall.Signal]string{
	syscall.SIGHUP:  "SIGHUP",
	syscall.SIGINT:  "SIGINT",
	syscall.SIGQUIT: "SIGQUIT",
	syscall.SIGTERM: "SIGTERM",
}

// SignalName returns the conventional name for a signal, e.g. "SIGTERM".
// Signals without a well-known name fall back to an upper-cased form of
// their runtime string.
func SignalName(sig os.Signal) string {
	if sig == os.Interrupt {
		return "SIGINT"
	}

	if s, ok := sig.(syscall.Signal); ok {
		if name, ok := signalNames[s]; ok {
			return name
		}
	}

	if sig == nil {
		return "UNKNOWN"
	}

	return strings.ToUpper(strings.ReplaceAll(sig.String(), " ", "_"))
}
