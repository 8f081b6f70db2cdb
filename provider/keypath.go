// Copyright 2025 The Rivaas Authors
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
	"strings"

	"github.com/spf13/cast"
)

// segments splits a key into lowercase path segments. Both ':' and '.'
// delimit segments; empty segments are dropped.
func segments(key string) []string {
	return strings.FieldsFunc(strings.ToLower(key), func(r rune) bool {
		return r == ':' || r == '.'
	})
}

// lookup resolves a key against a nested values map with lowercase keys.
// A direct match on the normalized flat key wins over path traversal, so
// maps holding pre-flattened keys keep working.
func lookup(values map[string]any, key string) (any, bool) {
	if len(values) == 0 {
		return nil, false
	}

	flat := strings.ReplaceAll(strings.ToLower(key), ":", ".")
	if v, ok := values[flat]; ok {
		return v, true
	}

	segs := segments(key)
	if len(segs) == 0 {
		return nil, false
	}

	current := values
	for i, seg := range segs {
		v, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segs)-1 {
			return v, true
		}
		nested, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// tryGet resolves a key and renders the leaf as a string. Values that do not
// stringify (nested maps, slices of composites) count as absent: a report
// line carries a single displayable value or nothing.
func tryGet(values map[string]any, key string) (string, bool) {
	v, ok := lookup(values, key)
	if !ok {
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return s, true
}

// normalizeKeys recursively lowercases all map keys so lookups are
// case-insensitive regardless of how the source spells them.
func normalizeKeys(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	normalized := make(map[string]any, len(m))
	for k, v := range m {
		lower := strings.ToLower(k)
		if nested, ok := v.(map[string]any); ok {
			normalized[lower] = normalizeKeys(nested)
		} else {
			normalized[lower] = v
		}
	}
	return normalized
}
