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

import "regexp"

// KeyMatcher decides whether a configuration key names a sensitive value.
// The report builder evaluates the matcher once per report, against the key
// name alone, and applies the decision uniformly to every provider line.
type KeyMatcher interface {
	Matches(key string) bool
}

// MatcherFunc adapts a plain function to the KeyMatcher interface.
type MatcherFunc func(key string) bool

// Matches implements KeyMatcher.
func (f MatcherFunc) Matches(key string) bool {
	return f(key)
}

// defaultKeyPattern covers the field names that commonly carry secrets.
var defaultKeyPattern = regexp.MustCompile(
	`(?i)(password|passwd|pwd|secret|token|credential|api[-_]?key|private[-_]?key)`)

type regexpMatcher struct {
	re *regexp.Regexp
}

// Matches implements KeyMatcher.
func (m *regexpMatcher) Matches(key string) bool {
	return m.re.MatchString(key)
}

// NewRegexpMatcher returns a KeyMatcher that classifies a key as sensitive
// when the expression matches anywhere in the key name.
func NewRegexpMatcher(re *regexp.Regexp) KeyMatcher {
	return &regexpMatcher{re: re}
}

// DefaultKeyMatcher returns the matcher used when no explicit matcher is
// configured. It matches the usual secret-bearing key names such as
// "password", "token", and "api_key", case-insensitively.
func DefaultKeyMatcher() KeyMatcher {
	return &regexpMatcher{re: defaultKeyPattern}
}
