// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package summary

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrBuildSummary is returned when a YAML report cannot be turned into a summary.
var ErrBuildSummary = errors.New("failed to build summary from YAML")

// report is the YAML schema consumed by FromYAML: a list of blocks, each
// with exactly one field set.
type report struct {
	Blocks []block `yaml:"blocks"`
}

type block struct {
	Heading   *headingBlock `yaml:"heading,omitempty"`
	Text      *string       `yaml:"text,omitempty"`
	Code      *codeBlock    `yaml:"code,omitempty"`
	List      *listBlock    `yaml:"list,omitempty"`
	Table     [][]string    `yaml:"table,omitempty"`
	Quote     *quoteBlock   `yaml:"quote,omitempty"`
	Details   *detailsBlock `yaml:"details,omitempty"`
	Image     *imageBlock   `yaml:"image,omitempty"`
	Link      *linkBlock    `yaml:"link,omitempty"`
	Separator bool          `yaml:"separator,omitempty"`
}

type headingBlock struct {
	Text  string `yaml:"text"`
	Level int    `yaml:"level"`
}

type codeBlock struct {
	Content string `yaml:"content"`
	Lang    string `yaml:"lang"`
}

type listBlock struct {
	Items   []string `yaml:"items"`
	Ordered bool     `yaml:"ordered"`
}

type quoteBlock struct {
	Text string `yaml:"text"`
	Cite string `yaml:"cite"`
}

type detailsBlock struct {
	Label   string `yaml:"label"`
	Content string `yaml:"content"`
}

type imageBlock struct {
	Src    string `yaml:"src"`
	Alt    string `yaml:"alt"`
	Width  string `yaml:"width"`
	Height string `yaml:"height"`
}

type linkBlock struct {
	Text string `yaml:"text"`
	Href string `yaml:"href"`
}

// FromYAML builds a Summary from a YAML report document. The document is a
// mapping with a "blocks" list; each block renders one summary element:
//
//	blocks:
//	  - heading: {text: Test results, level: 2}
//	  - text: "All suites passed."
//	  - table:
//	      - [Suite, Result]
//	      - [unit, pass]
//	  - code: {content: "go test ./...", lang: bash}
func FromYAML(data []byte) (*Summary, error) {
	var r report

	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, errors.Join(ErrBuildSummary, err)
	}

	s := New()

	for i, b := range r.Blocks {
		if err := applyBlock(s, b); err != nil {
			return nil, errors.Join(ErrBuildSummary, fmt.Errorf("block %d: %w", i, err))
		}
	}

	return s, nil
}

func applyBlock(s *Summary, b block) error {
	switch {
	case b.Heading != nil:
		level := b.Heading.Level
		if level == 0 {
			level = 1
		}

		s.AddHeading(b.Heading.Text, level)
	case b.Text != nil:
		s.AddRaw(*b.Text).AddEOL()
	case b.Code != nil:
		s.AddCodeBlock(b.Code.Content, b.Code.Lang)
	case b.List != nil:
		s.AddList(b.List.Items, b.List.Ordered)
	case b.Table != nil:
		s.AddTable(b.Table)
	case b.Quote != nil:
		s.AddQuote(b.Quote.Text, b.Quote.Cite)
	case b.Details != nil:
		s.AddDetails(b.Details.Label, b.Details.Content)
	case b.Image != nil:
		s.AddImage(b.Image.Src, b.Image.Alt, b.Image.Width, b.Image.Height)
	case b.Link != nil:
		s.AddLink(b.Link.Text, b.Link.Href).AddEOL()
	case b.Separator:
		s.AddSeparator()
	default:
		return errors.New("block has no recognised field")
	}

	return nil
}
