// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package workflowcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// ErrWriteCommand is returned when a workflow command cannot be written.
var ErrWriteCommand = errors.New("error writing workflow command")

// Handler is a slog.Handler that renders log records as workflow commands:
// debug records become ::debug:: lines, info records become notices, warn
// records warnings and error records error annotations. Attributes are
// appended to the message as key=value pairs.
type Handler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
}

// NewHandler creates a Handler writing to w. A nil leveler defaults to
// slog.LevelInfo.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}

	return &Handler{
		mu:     &sync.Mutex{},
		writer: w,
		level:  level,
	}
}

// Enabled implements the slog.Handler interface.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// WithAttrs implements the slog.Handler interface.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		mu:     h.mu,
		writer: h.writer,
		level:  h.level,
		attrs:  append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

// WithGroup implements the slog.Handler interface. Groups are flattened:
// workflow commands are single lines with no nesting to express them.
func (h *Handler) WithGroup(_ string) slog.Handler {
	return h
}

// Handle implements the slog.Handler interface.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	sb := strings.Builder{}
	sb.WriteString(r.Message)

	appendAttr := func(a slog.Attr) {
		v := a.Value.Resolve()
		if a.Key == "" {
			return
		}

		sb.WriteString(" ")
		sb.WriteString(a.Key)
		sb.WriteString("=")
		sb.WriteString(fmt.Sprint(v.Any()))
	}

	for _, a := range h.attrs {
		appendAttr(a)
	}

	r.Attrs(func(a slog.Attr) bool {
		appendAttr(a)
		return true
	})

	command := "notice"

	switch {
	case r.Level < slog.LevelInfo:
		command = "debug"
	case r.Level < slog.LevelWarn:
		command = "notice"
	case r.Level < slog.LevelError:
		command = "warning"
	default:
		command = "error"
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := fmt.Fprintf(h.writer, "::%s::%s\n", command, EscapeData(sb.String())); err != nil {
		return errors.Join(ErrWriteCommand, err)
	}

	return nil
}
