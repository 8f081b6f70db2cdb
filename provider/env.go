// Copyright 2025 The Rivaas Authors
// Copyright 2025 Company.info B.V.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package provider

import (
	"context"
	"os"
	"strings"
)

// Env is a provider that reads its values from environment variables
// carrying a common prefix. Underscores in the variable name after the
// prefix create nested key segments:
//
//	APP_DB_PASSWORD=hunter2  ->  db.password = "hunter2"  (prefix "APP_")
//
// TryGet answers from the variables captured by the last Load.
type Env struct {
	prefix string
	values map[string]any
}

// NewEnv creates an Env provider. Only variables starting with prefix are
// visible; the prefix is stripped before the name is split into segments.
func NewEnv(prefix string) *Env {
	return &Env{prefix: prefix}
}

// Load captures the current environment, replacing the provider's value
// snapshot. Variables whose name is empty after stripping the prefix are
// ignored.
func (e *Env) Load(context.Context) error {
	values := make(map[string]any)

	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, e.prefix) {
			continue
		}

		pair := strings.SplitN(strings.TrimPrefix(env, e.prefix), "=", 2)
		if len(pair) != 2 {
			continue
		}

		parts := splitName(pair[0])
		if len(parts) == 0 {
			continue
		}

		current := values
		for _, part := range parts[:len(parts)-1] {
			nested, ok := current[part].(map[string]any)
			if !ok {
				nested = make(map[string]any)
				current[part] = nested
			}
			current = nested
		}
		current[parts[len(parts)-1]] = strings.TrimSpace(pair[1])
	}

	e.values = values
	return nil
}

// splitName lowercases a variable name and splits it on underscores,
// dropping empty parts left by doubled or trailing underscores.
func splitName(name string) []string {
	raw := strings.Split(strings.ToLower(strings.TrimSpace(name)), "_")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// TryGet reports whether the captured environment holds a value for the key.
func (e *Env) TryGet(key string) (string, bool) {
	return tryGet(e.values, key)
}

// Values returns the value set captured by the last Load.
func (e *Env) Values() map[string]any {
	return e.values
}

// String returns the provider identity, including the variable prefix.
func (e *Env) String() string {
	return "env: " + e.prefix + "*"
}
