// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cancellation

import (
	"os"
	"os/signal"
)

// notifyFn and stopFn wrap the os/signal registration calls. They are
// variables so tests can observe installation and restoration without
// touching process-wide signal state.
var (
	notifyFn = signal.Notify
	stopFn   = signal.Stop
)

// binding owns the process-wide signal subscription for the tracked signals.
// Signal dispositions are a per-process singleton resource, so the binding
// exists only while the controller is enabled: newBinding captures the
// subscription and restore relinquishes it, returning delivery for the
// tracked signals to whatever behaviour was in place before.
type binding struct {
	ch      chan os.Signal
	signals []os.Signal
}

// newBinding subscribes ch to the given signals. The channel is buffered one
// slot per signal so a delivery arriving mid-drain is queued rather than
// dropped.
func newBinding(signals []os.Signal) *binding {
	b := &binding{
		ch:      make(chan os.Signal, len(signals)),
		signals: signals,
	}
	notifyFn(b.ch, signals...)

	return b
}

// restore relinquishes the subscription and clears the binding. Calling it
// on an already-restored binding is a no-op.
func (b *binding) restore() {
	if b.ch == nil {
		return
	}

	stopFn(b.ch)
	b.ch = nil
	b.signals = nil
}

// installed reports whether the binding currently holds a live subscription.
func (b *binding) installed() bool {
	return b != nil && b.ch != nil
}
