// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package actionenv

import "os"

// WithEnv sets the given environment variables, runs fn, and restores the
// previous values (removing variables that did not exist) before returning.
// The restore happens whether or not fn returns an error, and fn's error is
// passed through.
func WithEnv(vars map[string]string, fn func() error) error {
	type previous struct {
		value string
		ok    bool
	}

	saved := make(map[string]previous, len(vars))

	for key := range vars {
		v, ok := os.LookupEnv(key)
		saved[key] = previous{value: v, ok: ok}
	}

	defer func() {
		for key, prev := range saved {
			if prev.ok {
				os.Setenv(key, prev.value) //nolint:errcheck
				continue
			}

			os.Unsetenv(key) //nolint:errcheck
		}
	}()

	for key, value := range vars {
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}

	return fn()
}
