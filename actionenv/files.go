// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package actionenv

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/actionkit/workflowcmd"
)

const (
	githubOutputVar  = "GITHUB_OUTPUT"
	githubEnvVar     = "GITHUB_ENV"
	githubStateVar   = "GITHUB_STATE"
	delimiterPrefix  = "ghadelimiter_"
	heredocMarker    = "<<"
	statePrefix      = "STATE_"
	commandFilePerms = 0o644
)

// newDelimiter returns a unique heredoc delimiter. A fresh delimiter per
// block prevents a crafted value from terminating its own block early.
func newDelimiter() string {
	return delimiterPrefix + uuid.NewString()
}

// fileBlock renders one name/value pair in the command-file heredoc format
// understood by the Actions runner.
func fileBlock(name string, value any) string {
	delimiter := newDelimiter()

	return fmt.Sprintf("%s%s%s\n%s\n%s\n",
		workflowcmd.EscapeProperty(name),
		heredocMarker,
		delimiter,
		workflowcmd.EscapeData(fmt.Sprint(value)),
		delimiter,
	)
}

// appendToCommandFile appends content to the file named by envVar.
func appendToCommandFile(envVar, content string) error {
	path := os.Getenv(envVar)
	if path == "" {
		return newErrNotInActionsContext(envVar)
	}

	return appendToFile(path, content)
}

func appendToFile(path, content string) error {
	fs := FsFactory()

	f, err := fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, commandFilePerms)
	if err != nil {
		return fmt.Errorf("opening command file %s: %w", path, err)
	}

	defer f.Close() //nolint:errcheck

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("writing command file %s: %w", path, err)
	}

	return nil
}

// SetOutput sets a step output via the GITHUB_OUTPUT command file.
func SetOutput(name string, value any) error {
	return appendToCommandFile(githubOutputVar, fileBlock(name, value))
}

// SaveState saves a value to the GITHUB_STATE command file for the
// workflow's pre: and post: actions.
func SaveState(name string, value any) error {
	return appendToCommandFile(githubStateVar, fileBlock(name, value))
}

// State returns a value previously saved with SaveState, exposed by the
// runner as a STATE_<name> variable, and whether it was set.
func State(name string) (string, bool) {
	return os.LookupEnv(statePrefix + name)
}

// SetEnv sets an environment variable for subsequent workflow steps via the
// GITHUB_ENV command file.
func SetEnv(name string, value any) error {
	return appendToCommandFile(githubEnvVar, fileBlock(name, value))
}

// WorkflowEnv parses the GITHUB_ENV command file and returns the variables
// set so far by this job's steps.
func WorkflowEnv() (map[string]string, error) {
	path := os.Getenv(githubEnvVar)
	if path == "" {
		return nil, newErrNotInActionsContext(githubEnvVar)
	}

	fs := FsFactory()

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening command file %s: %w", path, err)
	}

	defer f.Close() //nolint:errcheck

	vars := make(map[string]string)
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Text()

		name, delimiter, ok := strings.Cut(line, heredocMarker)
		if !ok || name == "" || !strings.HasPrefix(delimiter, delimiterPrefix) {
			// Single-line "name=value" entries are also valid in GITHUB_ENV.
			if k, v, found := strings.Cut(line, "="); found && k != "" {
				vars[k] = v
			}

			continue
		}

		var value []string

		for scanner.Scan() {
			if scanner.Text() == delimiter {
				break
			}

			value = append(value, scanner.Text())
		}

		vars[name] = strings.Join(value, "\n")
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading command file %s: %w", path, err)
	}

	return vars, nil
}

// Env returns the value of an environment variable, falling back to any
// value written to the GITHUB_ENV command file during this job. Variables
// written there are only exported to later steps, so the current step sees
// them through the fallback.
func Env(name string) (string, error) {
	if v, ok := os.LookupEnv(name); ok {
		return v, nil
	}

	vars, err := WorkflowEnv()
	if err != nil {
		return "", err
	}

	return vars[name], nil
}

// ToEnvFile writes multiple environment variables in command-file format.
// An empty path targets the GITHUB_ENV file. Entries are written
// independently; failures are aggregated and do not stop later entries.
func ToEnvFile(vars map[string]any, path string) error {
	if path == "" {
		path = os.Getenv(githubEnvVar)
		if path == "" {
			return newErrNotInActionsContext(githubEnvVar)
		}
	}

	var errs *multierror.Error

	for name, value := range vars {
		if err := appendToFile(path, fileBlock(name, value)); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs.ErrorOrNil()
}
