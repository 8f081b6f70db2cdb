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

// Static is a provider backed by an in-memory map, typically used for
// defaults and for tests. Its values are fixed at construction.
type Static struct {
	name   string
	values map[string]any
}

// NewStatic creates a Static provider with the given identity and values.
// Keys are normalized to lowercase; nested maps create key segments.
func NewStatic(name string, values map[string]any) *Static {
	return &Static{
		name:   name,
		values: normalizeKeys(values),
	}
}

// TryGet reports whether the provider holds a value for the key.
func (s *Static) TryGet(key string) (string, bool) {
	return tryGet(s.values, key)
}

// Values returns the provider's value set.
func (s *Static) Values() map[string]any {
	return s.values
}

// String returns the identity given at construction.
func (s *Static) String() string {
	return s.name
}
