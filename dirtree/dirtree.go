// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dirtree renders a directory hierarchy as a styled tree, suitable
// for inclusion in workflow logs or job summaries.
package dirtree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
)

// FsFactory is the function used to create the filesystem to walk.
// Override in tests to supply an in-memory filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Styles holds the lipgloss styles applied to tree elements.
type Styles struct {
	Root   lipgloss.Style
	Dir    lipgloss.Style
	File   lipgloss.Style
	Branch lipgloss.Style
}

// NewStyles creates the default tree styling.
func NewStyles() *Styles {
	return &Styles{
		Root: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		Dir: lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")),
		File: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),
		Branch: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
	}
}

// PlainStyles creates styling with no colour, for plain-text output.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()

	return &Styles{
		Root:   plain,
		Dir:    plain,
		File:   plain,
		Branch: plain,
	}
}

// Tree walks a directory and renders it.
type Tree struct {
	root       string
	maxDepth   int
	showHidden bool
	styles     *Styles
}

// Option configures a Tree.
type Option func(*Tree)

// WithMaxDepth limits rendering to depth levels below the root. Zero or
// negative means unlimited.
func WithMaxDepth(depth int) Option {
	return func(t *Tree) {
		t.maxDepth = depth
	}
}

// WithHidden includes entries whose names begin with a dot.
func WithHidden() Option {
	return func(t *Tree) {
		t.showHidden = true
	}
}

// WithStyles replaces the default styling.
func WithStyles(s *Styles) Option {
	return func(t *Tree) {
		t.styles = s
	}
}

// New creates a Tree rooted at path.
func New(path string, opts ...Option) *Tree {
	t := &Tree{
		root:   path,
		styles: NewStyles(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Render walks the tree and returns the rendered output.
func (t *Tree) Render() (string, error) {
	fs := FsFactory()

	info, err := fs.Stat(t.root)
	if err != nil {
		return "", fmt.Errorf("reading tree root %q: %w", t.root, err)
	}

	var b strings.Builder

	b.WriteString(t.styles.Root.Render(filepath.Clean(t.root)))
	b.WriteString("\n")

	if info.IsDir() {
		if err := t.renderDir(fs, &b, t.root, "", 1); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

// Print renders the tree to w.
func (t *Tree) Print(w io.Writer) error {
	out, err := t.Render()
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, out)

	return err
}

func (t *Tree) renderDir(fs afero.Fs, b *strings.Builder, dir, prefix string, depth int) error {
	if t.maxDepth > 0 && depth > t.maxDepth {
		return nil
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return fmt.Errorf("reading directory %q: %w", dir, err)
	}

	entries = t.filter(entries)

	for i, entry := range entries {
		isLast := i == len(entries)-1

		connector := "├── "
		childPrefix := prefix + "│   "

		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		b.WriteString(t.styles.Branch.Render(prefix + connector))

		if entry.IsDir() {
			b.WriteString(t.styles.Dir.Render(entry.Name() + "/"))
			b.WriteString("\n")

			child := filepath.Join(dir, entry.Name())
			if err := t.renderDir(fs, b, child, childPrefix, depth+1); err != nil {
				return err
			}

			continue
		}

		b.WriteString(t.styles.File.Render(entry.Name()))
		b.WriteString("\n")
	}

	return nil
}

// filter drops hidden entries unless requested and sorts directories first,
// each group alphabetically.
func (t *Tree) filter(entries []os.FileInfo) []os.FileInfo {
	filtered := make([]os.FileInfo, 0, len(entries))

	for _, entry := range entries {
		if !t.showHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		filtered = append(filtered, entry)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].IsDir() != filtered[j].IsDir() {
			return filtered[i].IsDir()
		}

		return filtered[i].Name() < filtered[j].Name()
	})

	return filtered
}
