// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cancellation turns process termination signals (SIGTERM, SIGINT)
// into a cooperative cancellation protocol for code running inside a
// GitHub Actions workflow.
//
// A Controller owns an ordered registry of cleanup handlers and the signal
// subscriptions for the tracked signals. While enabled, a tracked signal
// does not terminate the process: the controller runs every registered
// handler in registration order, isolating failures, and then surfaces an
// *ErrCancellationRequested to the application via Err, Requested and any
// contexts derived with Context. Exiting, retrying or re-enabling is
// entirely the caller's decision.
//
// Enable and Disable are idempotent and may be cycled arbitrarily. The
// handler registry is never cleared, not even across Disable/Enable cycles.
//
// A signal arriving while a handler drain is already in progress is queued
// on the subscription channel and triggers a fresh drain once the current
// one completes. Signals beyond the channel buffer are dropped, matching
// the semantics of signal.Notify.
package cancellation
