// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package summary

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jobsummary "github.com/matt-FFFFFF/actionkit/summary"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const report = `blocks:
  - heading:
      text: Test results
      level: 2
  - text: All suites passed.
  - list:
      items:
        - unit
        - integration
`

func writeReport(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte(report), 0o644))

	return path
}

func TestSummaryStdout(t *testing.T) {
	defer goleak.VerifyNone(t)

	var b strings.Builder

	stub := gostub.Stub(&SummaryCmd.Writer, io.Writer(&b))
	defer stub.Reset()

	err := SummaryCmd.Run(context.Background(), []string{"summary", "--stdout", writeReport(t)})
	require.NoError(t, err)

	out := b.String()
	assert.Contains(t, out, "<h2>Test results</h2>")
	assert.Contains(t, out, "All suites passed.")
	assert.Contains(t, out, "<li>unit</li>")
}

func TestSummaryWritesSummaryFile(t *testing.T) {
	defer goleak.VerifyNone(t)

	fs := afero.NewMemMapFs()
	fsStub := gostub.Stub(&jobsummary.FsFactory, func() afero.Fs {
		return fs
	})
	defer fsStub.Reset()

	envStub := gostub.New()
	envStub.SetEnv("GITHUB_STEP_SUMMARY", "/summary.md")
	defer envStub.Reset()

	err := SummaryCmd.Run(context.Background(), []string{"summary", writeReport(t)})
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "/summary.md")
	require.NoError(t, err)
	assert.Contains(t, string(content), "## Test results")
}

func TestSummaryMissingReportFile(t *testing.T) {
	defer goleak.VerifyNone(t)

	err := SummaryCmd.Run(context.Background(), []string{"summary", "/nowhere/report.yaml"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadReport)
}

func TestSummaryMalformedReport(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte("blocks:\n  - banana: true\n"), 0o644))

	err := SummaryCmd.Run(context.Background(), []string{"summary", "--stdout", path})
	require.Error(t, err)
	assert.ErrorIs(t, err, jobsummary.ErrBuildSummary)
}
