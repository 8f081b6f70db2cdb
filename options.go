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

import (
	"regexp"
	"sync/atomic"
)

// Options controls how sensitive values are recognized and rendered in
// diagnostic output. A nil *Options passed to any operation means the
// process-wide default returned by [Default].
type Options struct {
	// KeyMatcher classifies key names as sensitive.
	KeyMatcher KeyMatcher
	// Obfuscator renders sensitive values for display.
	Obfuscator Obfuscator
}

// DiagnosticOption is a functional option that configures an Options value.
type DiagnosticOption func(o *Options)

// WithKeyMatcher sets the matcher deciding which keys are sensitive.
func WithKeyMatcher(m KeyMatcher) DiagnosticOption {
	return func(o *Options) {
		if m != nil {
			o.KeyMatcher = m
		}
	}
}

// WithKeyPattern sets a regexp-backed sensitivity matcher.
func WithKeyPattern(re *regexp.Regexp) DiagnosticOption {
	return func(o *Options) {
		if re != nil {
			o.KeyMatcher = NewRegexpMatcher(re)
		}
	}
}

// WithObfuscator sets the obfuscator applied to sensitive values.
func WithObfuscator(ob Obfuscator) DiagnosticOption {
	return func(o *Options) {
		if ob != nil {
			o.Obfuscator = ob
		}
	}
}

// NewOptions creates an Options value. Unset fields fall back to
// [DefaultKeyMatcher] and [DefaultObfuscator].
func NewOptions(opts ...DiagnosticOption) *Options {
	o := &Options{
		KeyMatcher: DefaultKeyMatcher(),
		Obfuscator: DefaultObfuscator(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// defaultOptions holds the process-wide default. It is read-only after
// initialization from the report builder's point of view; replacement via
// SetDefault is last-write-wins and is not otherwise coordinated.
var defaultOptions atomic.Pointer[Options]

func init() {
	defaultOptions.Store(NewOptions())
}

// Default returns the process-wide default options, used whenever an
// operation receives a nil *Options.
func Default() *Options {
	return defaultOptions.Load()
}

// SetDefault replaces the process-wide default options. Passing nil restores
// the built-in defaults. Prefer passing options explicitly at call sites;
// SetDefault exists for convenience call sites only.
func SetDefault(o *Options) {
	if o == nil {
		o = NewOptions()
	}
	defaultOptions.Store(o)
}
