// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cancellation

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"syscall"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/actionkit/internal/ctxlog"
)

// trackedSignals are the signals a Controller intercepts by default.
var trackedSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// Controller coordinates cooperative cancellation for a single process. It
// owns one handler registry and, while enabled, one signal binding. See the
// package documentation for the full protocol.
//
// All methods are safe for concurrent use.
type Controller struct {
	mu      sync.Mutex
	logger  *slog.Logger
	signals []os.Signal
	reg     registry
	bind    *binding
	enabled bool
	session uint64
	quit    chan struct{}
	done    chan struct{}
	err     *ErrCancellationRequested
	cancels []context.CancelCauseFunc
	wg      sync.WaitGroup
}

// Option configures a Controller.
type Option func(*Controller)

// WithSignals overrides the default tracked signals (SIGINT, SIGTERM).
func WithSignals(signals ...os.Signal) Option {
	return func(c *Controller) {
		if len(signals) > 0 {
			c.signals = signals
		}
	}
}

// WithLogger sets the logger used for delivery notices and handler failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Controller in the disabled state.
func New(opts ...Option) *Controller {
	c := &Controller{
		logger:  ctxlog.DefaultLogger,
		signals: trackedSignals,
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Register appends a cleanup handler to the registry. Handlers run in
// registration order on every delivery; registering the same handler twice
// runs it twice. Registration is permitted in any state and handlers are
// never unregistered.
func (c *Controller) Register(h func()) {
	if h == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.reg.add(h)
}

// Enable installs the signal binding and starts intercepting the tracked
// signals. Calling Enable while already enabled is a no-op: re-capturing
// would discard the subscription taken at the first call, breaking the
// guarantee that Disable restores the pre-Enable dispositions.
//
// Each successful Enable opens a fresh session: Err is reset and Requested
// returns a new channel.
func (c *Controller) Enable() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.enabled {
		return
	}

	c.bind = newBinding(c.signals)
	c.quit = make(chan struct{})
	c.done = make(chan struct{})
	c.err = nil
	c.session++
	c.enabled = true

	c.wg.Add(1)

	go c.watch(c.bind.ch, c.quit)
}

// Disable restores the pre-Enable signal dispositions and stops the watch
// goroutine. Calling Disable while already disabled is a no-op. The handler
// registry is left intact.
func (c *Controller) Disable() {
	c.mu.Lock()

	if !c.enabled {
		c.mu.Unlock()
		return
	}

	c.bind.restore()
	c.bind = nil
	c.enabled = false
	close(c.quit)
	c.mu.Unlock()

	// Wait outside the lock: an in-flight drain needs the lock to finish.
	c.wg.Wait()
}

// Enabled reports whether the controller is currently intercepting signals.
func (c *Controller) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.enabled && c.bind.installed()
}

// Requested returns a channel that is closed once a delivery in the current
// session has completed its handler drain. Before the first Enable it is a
// channel that never closes.
func (c *Controller) Requested() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.done
}

// Err returns the cancellation error recorded by the most recent completed
// delivery, or nil if no tracked signal has been delivered in the current
// session.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err == nil {
		return nil
	}

	return c.err
}

// Context derives a context from parent that is cancelled, with an
// *ErrCancellationRequested as its cause, when a delivery completes. This is
// how cancellation reaches code that is blocked mid-operation: pass the
// returned context to anything that accepts one and inspect context.Cause on
// the error path. The returned CancelFunc releases the context's resources
// and should be deferred as usual.
func (c *Controller) Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	c.mu.Lock()
	if c.err != nil {
		cancel(c.err)
	} else {
		c.cancels = append(c.cancels, cancel)
	}
	c.mu.Unlock()

	return ctx, func() { cancel(context.Canceled) }
}

// watch is the delivery loop. It runs in its own goroutine from Enable until
// Disable closes quit.
func (c *Controller) watch(ch <-chan os.Signal, quit <-chan struct{}) {
	defer c.wg.Done()

	for {
		select {
		case sig := <-ch:
			c.deliver(sig)
		case <-quit:
			return
		}
	}
}

// deliver runs one drain-then-surface sequence for a received signal.
func (c *Controller) deliver(sig os.Signal) {
	c.mu.Lock()

	if !c.enabled {
		c.mu.Unlock()
		return
	}

	session := c.session
	handlers := c.reg.snapshot()
	logger := c.logger
	c.mu.Unlock()

	name := SignalName(sig)
	logger.Warn("received signal, starting graceful shutdown", "signal", name)

	if err := drain(handlers, logger); err != nil {
		logger.Warn("cancellation handlers completed with errors", "signal", name, "error", err)
	}

	cerr := NewErrCancellationRequested(sig)

	c.mu.Lock()
	defer c.mu.Unlock()

	// The controller may have been disabled, or even re-enabled, while the
	// drain ran. Results belong to the session that received the signal.
	if !c.enabled || c.session != session {
		logger.Debug("cancellation support changed state during drain, discarding result", "signal", name)
		return
	}

	c.err = cerr

	for _, cancel := range c.cancels {
		cancel(cerr)
	}

	c.cancels = nil

	select {
	case <-c.done:
	default:
		close(c.done)
	}
}

// drain invokes every handler exactly once, in order. A panicking handler is
// logged and recorded but never prevents later handlers from running, and no
// handler failure suppresses the cancellation error surfaced afterwards.
func drain(handlers []func(), logger *slog.Logger) error {
	var errs error

	for i, h := range handlers {
		if err := invoke(h); err != nil {
			logger.Warn("error in cancellation handler", "index", i, "error", err)
			errs = multierror.Append(errs, err)
		}
	}

	return errs
}

func invoke(h func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewErrHandlerPanic(r)
		}
	}()

	h()

	return nil
}
