// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/actionkit/internal/color"
)

var (
	// ErrMarshalAttribute is returned when an attribute cannot be marshaled.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when the log line cannot be written.
	ErrIoWrite = errors.New("error when writing to output")
)

// TimeFormat is the format used for timestamps in log messages.
const TimeFormat = "[15:04:05.000]"

// PrettyHandler is a slog handler that renders human-readable console lines:
// a timestamp, a colored level, the message, and any attributes as colorized
// JSON.
type PrettyHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
	colour bool
}

// NewPrettyHandler creates a new PrettyHandler with the given options.
func NewPrettyHandler(handlerOptions *slog.HandlerOptions, options ...Option) *PrettyHandler {
	h := &PrettyHandler{
		mu:     &sync.Mutex{},
		writer: os.Stdout,
		level:  slog.LevelInfo,
	}

	if handlerOptions != nil && handlerOptions.Level != nil {
		h.level = handlerOptions.Level
	}

	for _, opt := range options {
		opt(h)
	}

	return h
}

// Option implements a functional options pattern for PrettyHandler.
type Option func(h *PrettyHandler)

// WithDestinationWriter sets the destination writer for the PrettyHandler.
func WithDestinationWriter(writer io.Writer) Option {
	return func(h *PrettyHandler) {
		h.writer = writer
	}
}

// WithColour enables color output for the PrettyHandler.
func WithColour() Option {
	return func(h *PrettyHandler) {
		h.colour = true
	}
}

// WithAutoColour enables color output when the process is attached to a terminal.
func WithAutoColour() Option {
	return func(h *PrettyHandler) {
		h.colour = color.Enabled()
	}
}

// Enabled implements the slog.Handler interface.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// WithAttrs implements the slog.Handler interface.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := h.clone()
	nh.attrs = append(nh.attrs, attrs...)

	return nh
}

// WithGroup implements the slog.Handler interface.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	nh := h.clone()
	nh.groups = append(nh.groups, name)

	return nh
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		mu:     h.mu,
		writer: h.writer,
		level:  h.level,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
		colour: h.colour,
	}
}

// Handle implements the slog.Handler interface.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := h.collectAttrs(r)

	var rendered string

	if len(attrs) > 0 {
		formatter := colorjson.NewFormatter()
		formatter.Indent = 2
		formatter.DisabledColor = !h.colour

		b, err := formatter.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}

		rendered = string(b)
	}

	out := strings.Builder{}
	out.WriteString(h.colorize(r.Time.Format(TimeFormat), color.FgWhite))
	out.WriteString(" ")
	out.WriteString(h.levelString(r.Level))
	out.WriteString(" ")
	out.WriteString(h.colorize(r.Message, color.FgHiWhite))

	if rendered != "" {
		out.WriteString(" ")
		out.WriteString(rendered)
	}

	out.WriteString("\n")

	if _, err := io.WriteString(h.writer, out.String()); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

// collectAttrs flattens the handler's accumulated attributes and the
// record's attributes into a map, nesting open groups.
func (h *PrettyHandler) collectAttrs(r slog.Record) map[string]any {
	top := make(map[string]any)

	for _, a := range h.attrs {
		addAttr(top, a)
	}

	leaf := top

	for _, g := range h.groups {
		next := make(map[string]any)
		leaf[g] = next
		leaf = next
	}

	r.Attrs(func(a slog.Attr) bool {
		addAttr(leaf, a)
		return true
	})

	for _, g := range h.groups {
		if m, ok := top[g].(map[string]any); ok && len(m) == 0 {
			delete(top, g)
		}
	}

	return top
}

func addAttr(m map[string]any, a slog.Attr) {
	v := a.Value.Resolve()

	if v.Kind() == slog.KindGroup {
		group := make(map[string]any)
		for _, ga := range v.Group() {
			addAttr(group, ga)
		}

		if a.Key == "" {
			for k, gv := range group {
				m[k] = gv
			}

			return
		}

		m[a.Key] = group

		return
	}

	if a.Key == "" {
		return
	}

	m[a.Key] = v.Any()
}

func (h *PrettyHandler) levelString(level slog.Level) string {
	s := level.String() + ":"

	switch {
	case level <= slog.LevelDebug:
		return h.colorize(s, color.FgWhite)
	case level <= slog.LevelInfo:
		return h.colorize(s, color.FgCyan)
	case level < slog.LevelError:
		return h.colorize(s, color.FgYellow)
	case level <= slog.LevelError+1:
		return h.colorize(s, color.FgRed)
	default:
		return h.colorize(s, color.FgHiMagenta)
	}
}

func (h *PrettyHandler) colorize(s string, codes ...color.Code) string {
	if !h.colour {
		return s
	}

	return color.Colorize(s, codes...)
}
