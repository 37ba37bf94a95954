// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package actionenv

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const githubEventPathVar = "GITHUB_EVENT_PATH"

// EventPayload decodes the webhook event that triggered the workflow from
// the file named by GITHUB_EVENT_PATH.
func EventPayload() (map[string]any, error) {
	path := os.Getenv(githubEventPathVar)
	if path == "" {
		return nil, newErrNotInActionsContext(githubEventPathVar)
	}

	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, fmt.Errorf("reading event payload %s: %w", path, err)
	}

	var payload map[string]any

	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decoding event payload %s: %w", path, err)
	}

	return payload, nil
}
