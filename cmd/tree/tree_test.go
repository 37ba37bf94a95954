// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tree

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/actionkit/dirtree"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func stubTreeFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	stub := gostub.Stub(&dirtree.FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stub.Reset)

	return fs
}

func TestTreeRendersPath(t *testing.T) {
	defer goleak.VerifyNone(t)

	fs := stubTreeFs(t)
	require.NoError(t, afero.WriteFile(fs, "/repo/main.go", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/repo/.hidden", []byte("x"), 0o644))

	var b strings.Builder

	stub := gostub.Stub(&TreeCmd.Writer, io.Writer(&b))
	defer stub.Reset()

	err := TreeCmd.Run(context.Background(), []string{"tree", "--plain", "/repo"})
	require.NoError(t, err)

	out := b.String()
	assert.Contains(t, out, "/repo")
	assert.Contains(t, out, "└── main.go")
	assert.NotContains(t, out, ".hidden")
}

func TestTreeHiddenAndDepthFlags(t *testing.T) {
	defer goleak.VerifyNone(t)

	fs := stubTreeFs(t)
	require.NoError(t, afero.WriteFile(fs, "/repo/.ci/config.yaml", []byte("x"), 0o644))

	var b strings.Builder

	stub := gostub.Stub(&TreeCmd.Writer, io.Writer(&b))
	defer stub.Reset()

	err := TreeCmd.Run(context.Background(), []string{"tree", "--plain", "--hidden", "--depth", "1", "/repo"})
	require.NoError(t, err)

	out := b.String()
	assert.Contains(t, out, ".ci/")
	assert.NotContains(t, out, "config.yaml")
}

func TestTreeMissingPath(t *testing.T) {
	defer goleak.VerifyNone(t)

	stubTreeFs(t)

	err := TreeCmd.Run(context.Background(), []string{"tree", "--plain", "/nowhere"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "reading tree root")
}
