// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cancellation

import "context"

// Default is the shared process-wide controller. Signal dispositions are a
// per-process resource, so most programs want exactly one controller;
// independent subsystems register their own cleanup here without fighting
// over the single signal slot. Construct separate Controllers with New for
// tests or where isolated state is needed.
var Default = New()

// Register appends a cleanup handler to the Default controller.
func Register(h func()) {
	Default.Register(h)
}

// Enable enables signal interception on the Default controller.
func Enable() {
	Default.Enable()
}

// Disable disables signal interception on the Default controller.
func Disable() {
	Default.Disable()
}

// Enabled reports whether the Default controller is intercepting signals.
func Enabled() bool {
	return Default.Enabled()
}

// Context derives a cancellation-aware context from the Default controller.
func Context(parent context.Context) (context.Context, context.CancelFunc) {
	return Default.Context(parent)
}
