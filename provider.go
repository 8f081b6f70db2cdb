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

package configdiag

import "context"

// Provider is a single layer of a layered configuration system, queryable
// by key. Providers are held by a [Root] in precedence order; the report
// builder queries each provider once and never mutates it.
//
// TryGet must be safe for concurrent reads if reports are built concurrently
// over the same provider set.
type Provider interface {
	// TryGet reports whether the provider holds a value for the key, and
	// returns that value rendered as a string. Keys are case-insensitive;
	// both ':' and '.' delimit key segments.
	TryGet(key string) (string, bool)

	// String returns the provider's human-readable identity as it should
	// appear in a report line, e.g. "file: config.yaml".
	String() string
}

// Loader is implemented by providers that read their data from an external
// location (files, environment, Consul). Root.Load calls it for every
// provider that implements it.
type Loader interface {
	// Load reads the provider's backing data. A provider answers TryGet
	// from the last successfully loaded data.
	Load(ctx context.Context) error
}

// Valuer is implemented by providers that can expose their full decoded
// value set. Root.Values merges these in provider order to produce the
// effective configuration view used by snapshots.
type Valuer interface {
	// Values returns the provider's decoded values with lowercase keys.
	// The returned map must be treated as read-only.
	Values() map[string]any
}
