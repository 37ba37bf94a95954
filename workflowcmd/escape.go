// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package workflowcmd

import "strings"

var (
	dataReplacer = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
	)

	propertyReplacer = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
		":", "%3A",
		",", "%2C",
	)
)

// EscapeData escapes a workflow command message value.
func EscapeData(s string) string {
	return dataReplacer.Replace(s)
}

// EscapeProperty escapes a workflow command parameter value.
func EscapeProperty(s string) string {
	return propertyReplacer.Replace(s)
}
