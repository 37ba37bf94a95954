// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cancellation

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testWait = 5 * time.Second

// notifyRecorder stubs the os/signal wiring so tests can push signals into
// the controller without touching process state.
type notifyRecorder struct {
	mu       sync.Mutex
	notified []chan<- os.Signal
	stopped  []chan<- os.Signal
}

func (n *notifyRecorder) stub() *gostub.Stubs {
	return gostub.Stub(&notifyFn, func(ch chan<- os.Signal, _ ...os.Signal) {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.notified = append(n.notified, ch)
	}).Stub(&stopFn, func(ch chan<- os.Signal) {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.stopped = append(n.stopped, ch)
	})
}

func (n *notifyRecorder) notifyCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.notified)
}

func (n *notifyRecorder) stopCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.stopped)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func waitRequested(t *testing.T, c *Controller) {
	t.Helper()

	select {
	case <-c.Requested():
	case <-time.After(testWait):
		t.Fatal("timed out waiting for cancellation delivery")
	}
}

// deliverSignal pushes a signal into the controller's stubbed subscription.
func deliverSignal(t *testing.T, c *Controller, sig os.Signal) {
	t.Helper()

	c.mu.Lock()
	bind := c.bind
	c.mu.Unlock()

	require.NotNil(t, bind, "controller must be enabled")
	bind.ch <- sig
}

func TestEnableIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &notifyRecorder{}
	defer rec.stub().Reset()

	c := New(WithLogger(quietLogger()))

	c.Enable()
	c.Enable()

	assert.True(t, c.Enabled())
	assert.Equal(t, 1, rec.notifyCount(), "second Enable must not re-capture the subscription")

	c.Disable()

	assert.False(t, c.Enabled())
	require.Equal(t, 1, rec.stopCount())
	assert.True(t, rec.notified[0] == rec.stopped[0],
		"Disable must restore exactly the subscription captured by the first Enable")
}

func TestDisableIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &notifyRecorder{}
	defer rec.stub().Reset()

	c := New(WithLogger(quietLogger()))

	c.Disable()
	c.Disable()

	assert.False(t, c.Enabled())
	assert.Zero(t, rec.stopCount())

	c.Enable()
	c.Disable()
	c.Disable()

	assert.False(t, c.Enabled())
	assert.Equal(t, 1, rec.stopCount())
}

func TestHandlersRunInRegistrationOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &notifyRecorder{}
	defer rec.stub().Reset()

	c := New(WithLogger(quietLogger()))

	var order []int

	c.Register(func() { order = append(order, 1) })
	c.Register(func() { order = append(order, 2) })
	c.Register(func() { order = append(order, 3) })

	c.Enable()
	defer c.Disable()

	deliverSignal(t, c, syscall.SIGTERM)
	waitRequested(t, c)

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestHandlerFailureIsIsolated(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &notifyRecorder{}
	defer rec.stub().Reset()

	logBuf := &bytes.Buffer{}
	c := New(WithLogger(slog.New(slog.NewTextHandler(logBuf, nil))))

	var order []int

	c.Register(func() {
		order = append(order, 1)
		panic("handler one failed")
	})
	c.Register(func() { order = append(order, 2) })
	c.Register(func() { order = append(order, 3) })

	c.Enable()
	defer c.Disable()

	deliverSignal(t, c, syscall.SIGTERM)
	waitRequested(t, c)

	assert.Equal(t, []int{1, 2, 3}, order, "a failing handler must not stop later handlers")
	require.Error(t, c.Err(), "handler failure must not suppress the cancellation error")
	assert.True(t, IsCancellationRequested(c.Err()))
	assert.Contains(t, logBuf.String(), "error in cancellation handler")
	assert.Contains(t, logBuf.String(), "handler one failed")
}

func TestErrMessageNamesSignal(t *testing.T) {
	tests := []struct {
		name string
		sig  os.Signal
		want string
	}{
		{name: "sigterm", sig: syscall.SIGTERM, want: "TERM"},
		{name: "sigint", sig: syscall.SIGINT, want: "INT"},
		{name: "interrupt", sig: os.Interrupt, want: "INT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewErrCancellationRequested(tt.sig)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "operation cancelled by")
			assert.Equal(t, tt.sig, err.Signal())
		})
	}
}

func TestDeliveryRecordsTypedError(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &notifyRecorder{}
	defer rec.stub().Reset()

	c := New(WithLogger(quietLogger()))
	c.Enable()

	defer c.Disable()

	require.NoError(t, c.Err())

	deliverSignal(t, c, syscall.SIGINT)
	waitRequested(t, c)

	err := c.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SIGINT")

	var target *ErrCancellationRequested

	require.ErrorAs(t, err, &target)
	assert.Equal(t, syscall.SIGINT, target.Signal())
}

func TestSignalAfterDisableIsIgnored(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &notifyRecorder{}
	defer rec.stub().Reset()

	c := New(WithLogger(quietLogger()))

	ran := false

	c.Register(func() { ran = true })
	c.Enable()

	c.mu.Lock()
	ch := c.bind.ch
	c.mu.Unlock()

	c.Disable()

	// The subscription channel is buffered, so this send does not block even
	// though nothing is listening any more.
	ch <- syscall.SIGTERM

	time.Sleep(50 * time.Millisecond)

	assert.False(t, ran)
	assert.NoError(t, c.Err())
}

func TestRegistryPersistsAcrossEnableCycles(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &notifyRecorder{}
	defer rec.stub().Reset()

	c := New(WithLogger(quietLogger()))

	count := 0

	c.Register(func() { count++ })

	c.Enable()
	c.Disable()
	c.Enable()

	defer c.Disable()

	deliverSignal(t, c, syscall.SIGTERM)
	waitRequested(t, c)

	assert.Equal(t, 1, count, "handlers registered before a disable/enable cycle still run")
}

func TestEnableOpensFreshSession(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &notifyRecorder{}
	defer rec.stub().Reset()

	c := New(WithLogger(quietLogger()))

	c.Enable()
	deliverSignal(t, c, syscall.SIGTERM)
	waitRequested(t, c)
	require.Error(t, c.Err())

	c.Disable()
	c.Enable()

	defer c.Disable()

	assert.NoError(t, c.Err(), "Err resets when a new session opens")

	select {
	case <-c.Requested():
		t.Fatal("Requested channel from a new session must not be closed")
	default:
	}
}

func TestContextCancelledWithCause(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &notifyRecorder{}
	defer rec.stub().Reset()

	c := New(WithLogger(quietLogger()))
	c.Enable()

	defer c.Disable()

	ctx, cancel := c.Context(context.Background())
	defer cancel()

	deliverSignal(t, c, syscall.SIGTERM)
	waitRequested(t, c)

	select {
	case <-ctx.Done():
	case <-time.After(testWait):
		t.Fatal("derived context was not cancelled")
	}

	cause := context.Cause(ctx)
	require.Error(t, cause)
	assert.True(t, IsCancellationRequested(cause))
	assert.Contains(t, cause.Error(), "SIGTERM")

	// Contexts derived after delivery are born cancelled.
	late, lateCancel := c.Context(context.Background())
	defer lateCancel()

	select {
	case <-late.Done():
	case <-time.After(testWait):
		t.Fatal("context derived after delivery must be cancelled immediately")
	}

	assert.True(t, IsCancellationRequested(context.Cause(late)))
}

func TestSignalDuringDrainIsQueued(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &notifyRecorder{}
	defer rec.stub().Reset()

	c := New(WithLogger(quietLogger()))

	var (
		mu     sync.Mutex
		drains int
	)

	release := make(chan struct{})
	started := make(chan struct{}, 2)

	c.Register(func() {
		started <- struct{}{}
		<-release

		mu.Lock()
		drains++
		mu.Unlock()
	})

	c.Enable()
	defer c.Disable()

	deliverSignal(t, c, syscall.SIGTERM)

	// Wait for the first drain to start, then queue a second signal while it
	// is still blocked.
	select {
	case <-started:
	case <-time.After(testWait):
		t.Fatal("first drain did not start")
	}

	deliverSignal(t, c, syscall.SIGINT)
	close(release)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return drains == 2
	}, testWait, 10*time.Millisecond, "queued signal must trigger a second drain")

	assert.Eventually(t, func() bool {
		err := c.Err()

		return err != nil && IsCancellationRequested(err)
	}, testWait, 10*time.Millisecond)
}

func TestDefaultControllerWrappers(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &notifyRecorder{}
	defer rec.stub().Reset()

	assert.False(t, Enabled())

	Enable()
	assert.True(t, Enabled())

	Register(func() {})

	Disable()
	assert.False(t, Enabled())
	assert.Equal(t, 1, rec.notifyCount())
	assert.Equal(t, 1, rec.stopCount())
}

func TestRegisterNilIsNoOp(t *testing.T) {
	c := New(WithLogger(quietLogger()))
	c.Register(nil)

	assert.Empty(t, c.reg.handlers)
}
