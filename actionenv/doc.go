// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package actionenv reads and writes the GitHub Actions environment-variable
// protocol: INPUT_* and STATE_* variables, and the GITHUB_OUTPUT, GITHUB_ENV
// and GITHUB_STATE command files. Multi-line values are written as heredoc
// blocks with a unique delimiter, matching what the Actions runner parses.
package actionenv
