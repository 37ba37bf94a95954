// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package summary builds and writes GitHub Actions job summaries. A Summary
// accumulates sanitized Markdown/HTML fragments through a fluent API and
// writes them to the file named by GITHUB_STEP_SUMMARY. Summaries larger
// than MaxSummarySize are rejected, matching the limit the Actions runner
// enforces.
package summary

import (
	"errors"
	"fmt"
	"html"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// MaxSummarySize is the maximum size of a job summary in bytes (1 MiB).
const MaxSummarySize = 1024 * 1024

const summaryPathVar = "GITHUB_STEP_SUMMARY"

var (
	// ErrNoSummaryFile is returned when GITHUB_STEP_SUMMARY is not set.
	ErrNoSummaryFile = errors.New("GITHUB_STEP_SUMMARY environment variable is not set")
	// ErrSummaryTooLarge is returned when the summary exceeds MaxSummarySize.
	ErrSummaryTooLarge = fmt.Errorf("summary exceeds maximum size of %d bytes", MaxSummarySize)
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// sanitize escapes HTML in user content to keep rendered summaries inert.
func sanitize(content string) string {
	return html.EscapeString(content)
}

// Summary is a fluent builder for job summary content.
type Summary struct {
	buf strings.Builder
}

// New creates an empty Summary.
func New() *Summary {
	return &Summary{}
}

// AddRaw adds raw markdown text without sanitization.
func (s *Summary) AddRaw(text string) *Summary {
	s.buf.WriteString(text)
	return s
}

// AddEOL adds a newline.
func (s *Summary) AddEOL() *Summary {
	return s.AddRaw("\n")
}

// AddHeading adds a heading at the given level. Levels outside 1..6 are
// clamped to 1.
func (s *Summary) AddHeading(text string, level int) *Summary {
	if level < 1 || level > 6 {
		level = 1
	}

	tag := "h" + strconv.Itoa(level)
	s.buf.WriteString(fmt.Sprintf("<%s>%s</%s>\n", tag, sanitize(text), tag))

	return s
}

// AddSeparator adds a horizontal rule.
func (s *Summary) AddSeparator() *Summary {
	s.buf.WriteString("<hr>\n")
	return s
}

// AddBreak adds a line break.
func (s *Summary) AddBreak() *Summary {
	s.buf.WriteString("<br>\n")
	return s
}

// AddQuote adds a blockquote with an optional citation URL.
func (s *Summary) AddQuote(text, cite string) *Summary {
	citeAttr := ""
	if cite != "" {
		citeAttr = fmt.Sprintf(" cite=%q", sanitize(cite))
	}

	s.buf.WriteString(fmt.Sprintf("<blockquote%s>%s</blockquote>\n", citeAttr, sanitize(text)))

	return s
}

// AddLink adds a hyperlink.
func (s *Summary) AddLink(text, href string) *Summary {
	s.buf.WriteString(fmt.Sprintf("<a href=%q>%s</a>", sanitize(href), sanitize(text)))
	return s
}

// AddCodeBlock adds a code block with optional language hint.
func (s *Summary) AddCodeBlock(code, lang string) *Summary {
	langAttr := ""
	if lang != "" {
		langAttr = fmt.Sprintf(" lang=%q", sanitize(lang))
	}

	s.buf.WriteString(fmt.Sprintf("<pre%s><code>%s</code></pre>\n", langAttr, sanitize(code)))

	return s
}

// AddList adds an unordered or ordered list.
func (s *Summary) AddList(items []string, ordered bool) *Summary {
	tag := "ul"
	if ordered {
		tag = "ol"
	}

	s.buf.WriteString("<" + tag + ">\n")

	for _, item := range items {
		s.buf.WriteString("<li>" + sanitize(item) + "</li>\n")
	}

	s.buf.WriteString("</" + tag + ">\n")

	return s
}

// Cell is a single table cell. Header defaults to true for cells in the
// first row; Colspan and Rowspan are emitted when greater than one.
type Cell struct {
	Data    string
	Header  bool
	Colspan int
	Rowspan int
}

// AddTable adds a table where the first row is the header row.
func (s *Summary) AddTable(rows [][]string) *Summary {
	cells := make([][]Cell, 0, len(rows))

	for i, row := range rows {
		cr := make([]Cell, 0, len(row))
		for _, c := range row {
			cr = append(cr, Cell{Data: c, Header: i == 0})
		}

		cells = append(cells, cr)
	}

	return s.AddTableCells(cells)
}

// AddTableCells adds a table with explicit cell attributes.
func (s *Summary) AddTableCells(rows [][]Cell) *Summary {
	if len(rows) == 0 {
		return s
	}

	s.buf.WriteString("<table>\n")

	for _, row := range rows {
		s.buf.WriteString("<tr>\n")

		for _, cell := range row {
			tag := "td"
			if cell.Header {
				tag = "th"
			}

			attrs := ""
			if cell.Colspan > 1 {
				attrs += fmt.Sprintf(" colspan=%q", strconv.Itoa(cell.Colspan))
			}

			if cell.Rowspan > 1 {
				attrs += fmt.Sprintf(" rowspan=%q", strconv.Itoa(cell.Rowspan))
			}

			s.buf.WriteString(fmt.Sprintf("<%s%s>%s</%s>\n", tag, attrs, sanitize(cell.Data), tag))
		}

		s.buf.WriteString("</tr>\n")
	}

	s.buf.WriteString("</table>\n")

	return s
}

// AddDetails adds a collapsible details section.
func (s *Summary) AddDetails(label, content string) *Summary {
	s.buf.WriteString("<details>\n")
	s.buf.WriteString("<summary>" + sanitize(label) + "</summary>\n")
	s.buf.WriteString(sanitize(content) + "\n")
	s.buf.WriteString("</details>\n")

	return s
}

// AddImage adds an image with alt text and optional dimensions.
func (s *Summary) AddImage(src, alt, width, height string) *Summary {
	attrs := fmt.Sprintf("src=%q alt=%q", sanitize(src), sanitize(alt))

	if width != "" {
		attrs += fmt.Sprintf(" width=%q", sanitize(width))
	}

	if height != "" {
		attrs += fmt.Sprintf(" height=%q", sanitize(height))
	}

	s.buf.WriteString("<img " + attrs + ">\n")

	return s
}

// Clear discards the buffered content without writing it.
func (s *Summary) Clear() *Summary {
	s.buf.Reset()
	return s
}

// String returns the buffered content.
func (s *Summary) String() string {
	return s.buf.String()
}

// IsEmpty reports whether the buffer is empty.
func (s *Summary) IsEmpty() bool {
	return s.buf.Len() == 0
}

// Write writes the buffered content to the job summary file and clears the
// buffer. When overwrite is true the file is replaced, otherwise the content
// is appended.
func (s *Summary) Write(overwrite bool) error {
	content := s.String()

	if len(content) > MaxSummarySize {
		return ErrSummaryTooLarge
	}

	path := os.Getenv(summaryPathVar)
	if path == "" {
		return ErrNoSummaryFile
	}

	if err := writeFile(path, content, overwrite); err != nil {
		return err
	}

	s.buf.Reset()

	return nil
}

func writeFile(path, content string, overwrite bool) error {
	fs := FsFactory()

	flags := os.O_APPEND | os.O_CREATE | os.O_WRONLY
	if overwrite {
		flags = os.O_TRUNC | os.O_CREATE | os.O_WRONLY
	}

	f, err := fs.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("opening summary file %s: %w", path, err)
	}

	defer f.Close() //nolint:errcheck

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("writing summary file %s: %w", path, err)
	}

	return nil
}

// cleanMarkdown reverses workflow-command escaping in markdown text.
func cleanMarkdown(markdown string) string {
	return strings.NewReplacer("%25", "%", "%0D", "\r", "%0A", "\n").Replace(markdown)
}

// Append appends raw markdown text to the job summary file.
func Append(markdown string) error {
	path := os.Getenv(summaryPathVar)
	if path == "" {
		return ErrNoSummaryFile
	}

	return writeFile(path, cleanMarkdown(markdown)+"\n", false)
}

// Overwrite replaces the job summary file with the given markdown text.
func Overwrite(markdown string) error {
	path := os.Getenv(summaryPathVar)
	if path == "" {
		return ErrNoSummaryFile
	}

	return writeFile(path, cleanMarkdown(markdown)+"\n", true)
}

// Remove deletes the job summary file. A missing file or unset variable is
// not an error.
func Remove() error {
	path := os.Getenv(summaryPathVar)
	if path == "" {
		return nil
	}

	err := FsFactory().Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing summary file %s: %w", path, err)
	}

	return nil
}
