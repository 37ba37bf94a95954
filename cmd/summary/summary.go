// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package summary

import (
	"context"
	"errors"
	"fmt"
	"os"

	jobsummary "github.com/matt-FFFFFF/actionkit/summary"
	"github.com/urfave/cli/v3"
)

const (
	fileArg       = "file"
	stdoutFlag    = "stdout"
	overwriteFlag = "overwrite"
)

var (
	// ErrReadReport is returned when the report file cannot be read.
	ErrReadReport = errors.New("failed to read report file")
	// ErrWriteSummary is returned when the job summary cannot be written.
	ErrWriteSummary = errors.New("failed to write job summary")
)

// SummaryCmd renders a YAML report into the job summary.
var SummaryCmd = &cli.Command{
	Name:      "summary",
	Usage:     "Render a YAML report to the job summary",
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Description: `Read a YAML report and render it as markdown into the file named by
GITHUB_STEP_SUMMARY. The report is a list of blocks, each with a single
field naming the element to render: heading, text, code, list, table,
quote, details, image, link or separator.`,
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: fileArg,
		},
	},
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        stdoutFlag,
			Usage:       "Print the rendered markdown instead of writing the summary file",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        overwriteFlag,
			Usage:       "Replace the existing summary instead of appending to it",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
	},
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	file := cmd.StringArg(fileArg)
	if file == "" {
		return cli.Exit("please specify a report file", 1)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Join(ErrReadReport, err)
	}

	s, err := jobsummary.FromYAML(data)
	if err != nil {
		return err
	}

	if cmd.Bool(stdoutFlag) {
		fmt.Fprint(cmd.Writer, s.String())
		return nil
	}

	if err := s.Write(cmd.Bool(overwriteFlag)); err != nil {
		return errors.Join(ErrWriteSummary, err)
	}

	return nil
}
