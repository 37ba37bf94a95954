// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fileedit performs in-place text file edits: whole-word
// replacement and marker-delimited section replacement. It is used by
// actions that maintain generated fragments inside hand-written files, such
// as a README section kept in sync by a workflow.
package fileedit

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// File holds the content of a text file loaded for editing.
type File struct {
	path    string
	content string
}

// Open reads the file at path for editing.
func Open(path string) (*File, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &File{path: path, content: string(data)}, nil
}

// Path returns the path the file was opened from.
func (f *File) Path() string {
	return f.path
}

// Content returns the current (possibly edited) content.
func (f *File) Content() string {
	return f.content
}

// ReplaceWords applies every old/new pair to the content and returns the
// result. The edit is in memory until Write or WriteTo is called.
func (f *File) ReplaceWords(replacements map[string]string) string {
	for word, replacement := range replacements {
		f.content = strings.ReplaceAll(f.content, word, replacement)
	}

	return f.content
}

// Write writes the content back to the file it was opened from.
func (f *File) Write() error {
	return f.WriteTo(f.path)
}

// WriteTo writes the content to path, creating parent directories as needed.
func (f *File) WriteTo(path string) error {
	fs := FsFactory()

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(fs, path, []byte(f.content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// SectionEdit controls ReplaceSection behaviour when no section is found.
type SectionEdit struct {
	// StartMarkers and EndMarkers are candidate delimiters, tried in order.
	// Matching is case-insensitive. The section replaced spans from the end
	// of the first matching start marker to the start of the first matching
	// end marker after it.
	StartMarkers []string
	EndMarkers   []string
	// AppendStartMarker and AppendEndMarker wrap the section when none of
	// the start markers exist and the section is appended to the file.
	AppendStartMarker string
	AppendEndMarker   string
}

// ReplaceSection replaces the marker-delimited section of the file on disk
// with part. When no start marker is found the section is appended, wrapped
// in the configured append markers. It reports whether the file changed.
func (f *File) ReplaceSection(part string, edit SectionEdit) (bool, error) {
	data, err := afero.ReadFile(FsFactory(), f.path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", f.path, err)
	}

	content := string(data)
	lower := strings.ToLower(content)

	start := -1

	for _, marker := range edit.StartMarkers {
		if idx := strings.Index(lower, strings.ToLower(marker)); idx >= 0 {
			start = idx + len(marker)
			break
		}
	}

	var updated string

	switch {
	case start >= 0:
		end := len(content)

		for _, marker := range edit.EndMarkers {
			if idx := strings.Index(lower[start:], strings.ToLower(marker)); idx >= 0 {
				end = start + idx
				break
			}
		}

		updated = content[:start] + part + content[end:]
	default:
		updated = content + edit.AppendStartMarker + part + edit.AppendEndMarker
	}

	if updated == content {
		return false, nil
	}

	f.content = updated

	if err := f.WriteTo(f.path); err != nil {
		return false, err
	}

	return true, nil
}
