// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tree

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/actionkit/dirtree"
	"github.com/urfave/cli/v3"
)

const (
	pathArg     = "path"
	depthFlag   = "depth"
	hiddenFlag  = "hidden"
	noStyleFlag = "plain"
)

// TreeCmd renders a directory tree.
var TreeCmd = &cli.Command{
	Name:      "tree",
	Usage:     "Render a directory tree",
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: pathArg,
		},
	},
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    depthFlag,
			Aliases: []string{"d"},
			Usage:   "Limit the tree to this many levels below the root",
			Value:   0,
		},
		&cli.BoolFlag{
			Name:        hiddenFlag,
			Aliases:     []string{"a"},
			Usage:       "Include entries whose names begin with a dot",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        noStyleFlag,
			Usage:       "Render without any styling",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
	},
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	path := cmd.StringArg(pathArg)
	if path == "" {
		path = "."
	}

	opts := []dirtree.Option{
		dirtree.WithMaxDepth(cmd.Int(depthFlag)),
	}

	if cmd.Bool(hiddenFlag) {
		opts = append(opts, dirtree.WithHidden())
	}

	if cmd.Bool(noStyleFlag) {
		opts = append(opts, dirtree.WithStyles(dirtree.PlainStyles()))
	}

	return dirtree.New(path, opts...).Print(cmd.Writer)
}
