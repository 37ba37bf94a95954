// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gitrepo wraps the git command-line client for use inside GitHub
// Actions workflows: cloning or opening a repository, committing generated
// changes and pushing them back. All operations shell out to the git binary
// on PATH and honour context cancellation.
package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/matt-FFFFFF/actionkit/internal/ctxlog"
)

const (
	defaultRemote = "origin"

	defaultAuthorName  = "github-actions[bot]"
	defaultAuthorEmail = "github-actions[bot]@users.noreply.github.com"
)

var (
	// ErrGitOperation is returned when a git command fails.
	ErrGitOperation = errors.New("git operation failed")
	// ErrNoRepository is returned when Open is given a path that is not
	// inside a git work tree.
	ErrNoRepository = errors.New("path is not a git repository")
)

// runGit executes a git command in dir and returns its trimmed stdout. It is
// a variable so tests can substitute a recorder.
var runGit = func(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}

		return "", fmt.Errorf("%w: git %s: %s", ErrGitOperation, strings.Join(args, " "), detail)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Repo is a local clone operated through the git CLI.
type Repo struct {
	path string
}

// Open returns a Repo for an existing work tree at path.
func Open(ctx context.Context, path string) (*Repo, error) {
	if _, err := runGit(ctx, path, "rev-parse", "--git-dir"); err != nil {
		return nil, errors.Join(ErrNoRepository, err)
	}

	ctxlog.Info(ctx, "using existing repository", "path", path)

	return &Repo{path: path}, nil
}

// Clone clones url into path and returns the Repo. An empty path clones
// into a new temporary directory.
func Clone(ctx context.Context, url, path string) (*Repo, error) {
	if path == "" {
		dir, err := os.MkdirTemp("", "gitrepo_")
		if err != nil {
			return nil, fmt.Errorf("creating clone directory: %w", err)
		}

		path = dir
	}

	ctxlog.Info(ctx, "cloning repository", "url", url, "path", path)

	if _, err := runGit(ctx, "", "clone", url, path); err != nil {
		return nil, err
	}

	return &Repo{path: path}, nil
}

// Path returns the work tree path.
func (r *Repo) Path() string {
	return r.path
}

// ConfigureUser sets the commit author for the repository from the
// GIT_AUTHOR_NAME and GIT_AUTHOR_EMAIL environment variables, defaulting to
// the github-actions bot identity.
func (r *Repo) ConfigureUser(ctx context.Context) error {
	name := os.Getenv("GIT_AUTHOR_NAME")
	if name == "" {
		name = defaultAuthorName
	}

	email := os.Getenv("GIT_AUTHOR_EMAIL")
	if email == "" {
		email = defaultAuthorEmail
	}

	if _, err := runGit(ctx, r.path, "config", "user.name", name); err != nil {
		return err
	}

	_, err := runGit(ctx, r.path, "config", "user.email", email)

	return err
}

// CurrentBranch returns the name of the checked-out branch.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	return runGit(ctx, r.path, "rev-parse", "--abbrev-ref", "HEAD")
}

// CreateBranch creates and checks out a new branch.
func (r *Repo) CreateBranch(ctx context.Context, name string) error {
	ctxlog.Info(ctx, "creating new branch", "branch", name)

	_, err := runGit(ctx, r.path, "checkout", "-b", name)

	return err
}

// Add stages the given paths.
func (r *Repo) Add(ctx context.Context, paths ...string) error {
	ctxlog.Info(ctx, "staging files", "paths", paths)

	args := append([]string{"add", "--"}, paths...)
	_, err := runGit(ctx, r.path, args...)

	return err
}

// Commit records a commit with the given message.
func (r *Repo) Commit(ctx context.Context, message string) error {
	ctxlog.Info(ctx, "committing", "message", message)

	_, err := runGit(ctx, r.path, "commit", "-m", message)

	return err
}

// AddAllAndCommit stages every change and commits with the given message.
func (r *Repo) AddAllAndCommit(ctx context.Context, message string) error {
	ctxlog.Info(ctx, "staging all changes and committing", "message", message)

	if _, err := runGit(ctx, r.path, "add", "--all"); err != nil {
		return err
	}

	_, err := runGit(ctx, r.path, "commit", "-m", message)

	return err
}

// Push pushes branch to remote. Empty arguments default to origin and the
// current branch.
func (r *Repo) Push(ctx context.Context, remote, branch string) error {
	remote, branch, err := r.remoteAndBranch(ctx, remote, branch)
	if err != nil {
		return err
	}

	ctxlog.Info(ctx, "pushing", "remote", remote, "branch", branch)

	_, err = runGit(ctx, r.path, "push", remote, branch)

	return err
}

// Pull pulls branch from remote. Empty arguments default to origin and the
// current branch.
func (r *Repo) Pull(ctx context.Context, remote, branch string) error {
	remote, branch, err := r.remoteAndBranch(ctx, remote, branch)
	if err != nil {
		return err
	}

	ctxlog.Info(ctx, "pulling", "remote", remote, "branch", branch)

	_, err = runGit(ctx, r.path, "pull", remote, branch)

	return err
}

func (r *Repo) remoteAndBranch(ctx context.Context, remote, branch string) (string, string, error) {
	if remote == "" {
		remote = defaultRemote
	}

	if branch == "" {
		current, err := r.CurrentBranch(ctx)
		if err != nil {
			return "", "", err
		}

		branch = current
	}

	return remote, branch, nil
}
