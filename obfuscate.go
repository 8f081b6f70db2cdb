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

// Obfuscator transforms a raw sensitive value into its redacted display
// form. The report builder uses the obfuscator's output verbatim, without
// the quoting applied to raw values.
type Obfuscator interface {
	Obfuscate(value string) string
}

// ObfuscatorFunc adapts a plain function to the Obfuscator interface.
type ObfuscatorFunc func(value string) string

// Obfuscate implements Obfuscator.
func (f ObfuscatorFunc) Obfuscate(value string) string {
	return f(value)
}

// FixedObfuscator returns an Obfuscator that replaces every value with the
// same fixed string, regardless of the value's content or length.
func FixedObfuscator(replacement string) Obfuscator {
	return ObfuscatorFunc(func(string) string {
		return replacement
	})
}

// DefaultObfuscator returns the obfuscator used when no explicit obfuscator
// is configured: every sensitive value is rendered as "***".
func DefaultObfuscator() Obfuscator {
	return FixedObfuscator("***")
}

// PartialObfuscator returns an Obfuscator that keeps the first and last
// 'keep' runes of the value and masks the middle. Values too short to hide
// anything meaningful are fully masked.
func PartialObfuscator(keep int) Obfuscator {
	return ObfuscatorFunc(func(value string) string {
		runes := []rune(value)
		if keep <= 0 || len(runes) <= 2*keep+1 {
			return "***"
		}
		var b strings.Builder
		b.WriteString(string(runes[:keep]))
		b.WriteString("***")
		b.WriteString(string(runes[len(runes)-keep:]))
		return b.String()
	})
}
