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
	"strings"
	"unicode"
)

// Placeholder combines free-text label fragments into one brace-delimited,
// identifier-safe token. Empty and whitespace-only parts are skipped; the
// remaining parts are joined with a single underscore. Within a part,
// letters, digits, and periods pass through unchanged and every other
// character becomes an underscore.
//
// A part starting with a decimal digit produces a doubled underscore in
// place of the digit: the leading-digit rule and the character substitution
// pass both fire on that position. Placeholder("9abc") is therefore
// "{__abc}", not "{_abc}". This matches the long-standing output of the
// formatter and is deliberately kept for compatibility; callers relying on
// the token shape should not expect it to change.
//
// The result always starts with '{', ends with '}', and contains only
// letters, digits, periods, underscores, and the two braces.
func Placeholder(parts ...string) string {
	var b strings.Builder
	b.WriteByte('{')

	first := true
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		if !first {
			b.WriteByte('_')
		}
		first = false

		for i, r := range part {
			if i == 0 && unicode.IsDigit(r) {
				// Doubled on purpose, see above.
				b.WriteString("__")
				continue
			}
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' {
				b.WriteRune(r)
			} else {
				b.WriteByte('_')
			}
		}
	}

	b.WriteByte('}')
	return b.String()
}
