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

// Package provider implements the configuration layers that configdiag
// reports on: in-memory maps, files, environment variables, and Consul's
// key-value store.
//
// Every provider answers key lookups from an immutable snapshot of its
// decoded data. Providers backed by an external location take that snapshot
// when Load is called; until then they report every key as absent. Keys are
// case-insensitive and both ':' and '.' delimit key segments, so
// "Db:Password" and "db.password" address the same value.
package provider
