// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package actionenv

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/matt-FFFFFF/actionkit/workflowcmd"
)

const inputPrefix = "INPUT_"

// Input returns the value of a workflow input and whether it was provided.
// The Actions runner exposes inputs as INPUT_<UPPERCASED NAME> variables.
func Input(name string) (string, bool) {
	return os.LookupEnv(inputPrefix + strings.ToUpper(name))
}

// InputOrDefault returns the input value, or def when the input is unset or
// empty.
func InputOrDefault(name, def string) string {
	v, ok := Input(name)
	if !ok || v == "" {
		return def
	}

	return v
}

// AllInputs returns every workflow input, keyed by lower-cased name.
func AllInputs() map[string]string {
	inputs := make(map[string]string)

	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, inputPrefix) {
			continue
		}

		inputs[strings.ToLower(strings.TrimPrefix(key, inputPrefix))] = value
	}

	return inputs
}

// PrintAllInputs echoes every workflow input inside a collapsible log group.
func PrintAllInputs() {
	inputs := AllInputs()
	if len(inputs) == 0 {
		workflowcmd.Echo("No user inputs found.")
		return
	}

	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}

	sort.Strings(names)

	_ = workflowcmd.Group("User Inputs:", func() error {
		for _, name := range names {
			workflowcmd.Echo(fmt.Sprintf("  %s: %s", name, inputs[name]))
		}

		return nil
	})
}

var (
	truthy = map[string]struct{}{"true": {}, "t": {}, "1": {}, "y": {}, "yes": {}}
	falsy  = map[string]struct{}{"false": {}, "f": {}, "0": {}, "n": {}, "no": {}}
)

// InputBool parses a workflow input using the Actions truthiness rules
// (true/t/1/y/yes and false/f/0/n/no, case-insensitive). An unset or empty
// input returns def; an unrecognised value returns ErrInvalidInput.
func InputBool(name string, def bool) (bool, error) {
	v, ok := Input(name)
	if !ok || v == "" {
		return def, nil
	}

	lower := strings.ToLower(v)

	if _, ok := truthy[lower]; ok {
		return true, nil
	}

	if _, ok := falsy[lower]; ok {
		return false, nil
	}

	return def, newErrInvalidInput(name, v, "bool")
}

// InputInt parses a workflow input as an integer. An unset or empty input
// returns def.
func InputInt(name string, def int) (int, error) {
	v, ok := Input(name)
	if !ok || v == "" {
		return def, nil
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return def, newErrInvalidInput(name, v, "int")
	}

	return i, nil
}

// InputFloat parses a workflow input as a float. An unset or empty input
// returns def.
func InputFloat(name string, def float64) (float64, error) {
	v, ok := Input(name)
	if !ok || v == "" {
		return def, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, newErrInvalidInput(name, v, "float")
	}

	return f, nil
}
