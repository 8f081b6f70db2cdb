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

import "strings"

// BuildReport walks the providers in order and builds a textual report of
// which provider(s) supplied a value for key.
//
// Each provider is queried exactly once, in the given order. Providers that
// hold a value contribute a line with their identity and the value; when the
// key is classified sensitive by opts.KeyMatcher, the obfuscator's output is
// shown instead of the raw value. Providers without a value contribute a
// "null" line unless compressed is true, in which case they are omitted.
//
// With no providers at all, the report is a single fixed-shape message
// stating the key cannot be tracked. When providers exist but none holds a
// value, the report ends with a "not found" summary; in compressed form that
// summary is appended directly to the header so the whole report reads as
// one sentence.
//
// A nil opts uses the process-wide default options. BuildReport is a pure
// read: it never mutates providers or options, and a missing key is a normal
// outcome, not an error.
func BuildReport(providers []Provider, key string, compressed bool, opts *Options) string {
	if len(providers) == 0 {
		return "Cannot track " + key + ". No configuration providers found."
	}

	if opts == nil {
		opts = Default()
	}

	// The sensitivity decision is made once from the key name alone and
	// applied uniformly to every contributing provider.
	obfuscate := opts.KeyMatcher.Matches(key)

	var b strings.Builder
	b.WriteString("Provider sources for value of ")
	b.WriteString(key)

	found := false
	for _, p := range providers {
		value, ok := p.TryGet(key)
		switch {
		case ok:
			found = true
			b.WriteString("\n* ")
			b.WriteString(p.String())
			b.WriteString(" ==> ")
			if obfuscate {
				b.WriteString(opts.Obfuscator.Obfuscate(value))
			} else {
				b.WriteByte('"')
				b.WriteString(value)
				b.WriteByte('"')
			}
		case !compressed:
			b.WriteString("\n* ")
			b.WriteString(p.String())
			b.WriteString(" ==> null")
		}
	}

	if !found {
		if compressed {
			b.WriteString(" were not found.")
		} else {
			b.WriteByte('\n')
			b.WriteString(key)
			b.WriteString(" not found in any provider.")
		}
	}

	return b.String()
}
