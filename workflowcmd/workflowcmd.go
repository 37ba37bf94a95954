// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package workflowcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Output is the destination for workflow commands. It is a variable so tests
// can capture emitted commands.
var Output io.Writer = os.Stdout

// AnnotationProperties attaches source metadata to notice, warning and error
// annotations. Zero-valued fields are omitted from the command.
type AnnotationProperties struct {
	Title     string
	File      string
	Line      int
	EndLine   int
	Col       int
	EndColumn int
}

func (p AnnotationProperties) encode() string {
	parts := make([]string, 0, 6)

	appendStr := func(key, value string) {
		if value != "" {
			parts = append(parts, key+"="+EscapeProperty(value))
		}
	}
	appendInt := func(key string, value int) {
		if value != 0 {
			parts = append(parts, key+"="+strconv.Itoa(value))
		}
	}

	appendStr("title", p.Title)
	appendStr("file", p.File)
	appendInt("line", p.Line)
	appendInt("endLine", p.EndLine)
	appendInt("col", p.Col)
	appendInt("endColumn", p.EndColumn)

	return strings.Join(parts, ",")
}

func issue(command, message string, props ...AnnotationProperties) {
	params := ""

	if len(props) > 0 {
		params = props[0].encode()
	}

	if params != "" {
		params = " " + params
	}

	fmt.Fprintf(Output, "::%s%s::%s\n", command, params, EscapeData(message))
}

// Echo prints a plain message to the workflow log.
func Echo(message string) {
	fmt.Fprintln(Output, message)
}

// Debug emits a debug message, visible when step debug logging is enabled.
func Debug(message string) {
	issue("debug", message)
}

// Notice emits a notice annotation.
func Notice(message string, props ...AnnotationProperties) {
	issue("notice", message, props...)
}

// Warning emits a warning annotation.
func Warning(message string, props ...AnnotationProperties) {
	issue("warning", message, props...)
}

// Error emits an error annotation.
func Error(message string, props ...AnnotationProperties) {
	issue("error", message, props...)
}

// AddMask registers a value to be masked in the workflow log.
func AddMask(value string) {
	issue("add-mask", value)
}

// StartGroup opens a collapsible group in the workflow log.
func StartGroup(title string) {
	issue("group", title)
}

// EndGroup closes the current collapsible group.
func EndGroup() {
	fmt.Fprintln(Output, "::endgroup::")
}

// Group runs fn inside a collapsible group. The group is closed even when fn
// returns an error, and the error is passed through.
func Group(title string, fn func() error) error {
	StartGroup(title)
	defer EndGroup()

	return fn()
}
