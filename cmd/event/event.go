// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package event

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/actionkit/actionenv"
	"github.com/urfave/cli/v3"
)

const noColourFlag = "no-colour"

// ErrFormatEvent is returned when the event payload cannot be formatted.
var ErrFormatEvent = errors.New("failed to format event payload")

// EventCmd pretty-prints the webhook event that triggered the workflow.
var EventCmd = &cli.Command{
	Name:      "event",
	Usage:     "Pretty-print the workflow's webhook event payload",
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        noColourFlag,
			Aliases:     []string{"no-color"},
			Usage:       "Disable colourised output",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
	},
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	payload, err := actionenv.EventPayload()
	if err != nil {
		return err
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	f.DisabledColor = cmd.Bool(noColourFlag)

	out, err := f.Marshal(payload)
	if err != nil {
		return errors.Join(ErrFormatEvent, err)
	}

	fmt.Fprintf(cmd.Writer, "%s\n", out)

	return nil
}
