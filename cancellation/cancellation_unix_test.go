// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package cancellation

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestEndToEndRealSignal(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("os/signal.signal_recv"))

	// No stubs here: this exercises the real os/signal wiring by sending
	// SIGTERM to our own process while the controller is enabled.
	c := New(WithLogger(quietLogger()))

	var log []string

	c.Register(func() { log = append(log, "cleanup") })

	c.Enable()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))
	waitRequested(t, c)

	assert.Equal(t, []string{"cleanup"}, log)
	require.Error(t, c.Err())
	assert.Contains(t, c.Err().Error(), "SIGTERM")
	assert.True(t, c.Enabled(), "delivery does not disable the controller")

	c.Disable()
	assert.False(t, c.Enabled())
}
