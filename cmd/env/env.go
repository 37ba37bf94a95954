// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/matt-FFFFFF/actionkit/actionenv"
	"github.com/urfave/cli/v3"
)

const (
	nameArg  = "name"
	valueArg = "value"
)

// ErrListEnv is returned when the workflow environment file cannot be read.
var ErrListEnv = errors.New("failed to list workflow environment")

// EnvCmd manages the workflow environment file.
var EnvCmd = &cli.Command{
	Name:      "env",
	Usage:     "Manage variables exported to later workflow steps",
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Commands: []*cli.Command{
		setCmd,
		listCmd,
		inputsCmd,
	},
}

var setCmd = &cli.Command{
	Name:  "set",
	Usage: "Export a variable to later workflow steps",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: nameArg,
		},
		&cli.StringArg{
			Name: valueArg,
		},
	},
	Action: func(_ context.Context, cmd *cli.Command) error {
		name := cmd.StringArg(nameArg)
		if name == "" {
			return cli.Exit("please specify a variable name", 1)
		}

		return actionenv.SetEnv(name, cmd.StringArg(valueArg))
	},
}

var listCmd = &cli.Command{
	Name:  "list",
	Usage: "List variables already exported in this job",
	Action: func(_ context.Context, cmd *cli.Command) error {
		vars, err := actionenv.WorkflowEnv()
		if err != nil {
			return errors.Join(ErrListEnv, err)
		}

		names := make([]string, 0, len(vars))
		for name := range vars {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintf(cmd.Writer, "%s=%s\n", name, vars[name])
		}

		return nil
	},
}

var inputsCmd = &cli.Command{
	Name:  "inputs",
	Usage: "Print the action inputs as a log group",
	Action: func(_ context.Context, _ *cli.Command) error {
		actionenv.PrintAllInputs()
		return nil
	},
}
