// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cancellation

import "slices"

// registry is an ordered, append-only collection of cleanup callbacks.
// Entries are invoked in registration order and are never removed: the same
// registry serves every drain for the lifetime of the controller, including
// across disable/enable cycles. Duplicate registrations run multiple times.
//
// The registry carries no lock of its own; the owning Controller serializes
// all access.
type registry struct {
	handlers []func()
}

// add appends a handler. It never fails and performs no deduplication.
func (r *registry) add(h func()) {
	r.handlers = append(r.handlers, h)
}

// snapshot returns a copy of the current handler sequence so a drain can run
// without holding the controller lock. Handlers registered after the
// snapshot run on the next drain.
func (r *registry) snapshot() []func() {
	return slices.Clone(r.handlers)
}
