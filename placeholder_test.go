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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{
			name:  "no parts",
			parts: nil,
			want:  "{}",
		},
		{
			name:  "plain identifier passes through",
			parts: []string{"server"},
			want:  "{server}",
		},
		{
			name:  "letters digits and periods are kept",
			parts: []string{"a1b2.c3"},
			want:  "{a1b2.c3}",
		},
		{
			name:  "disallowed characters become underscores",
			parts: []string{"app name!"},
			want:  "{app_name_}",
		},
		{
			name:  "empty and whitespace parts are skipped",
			parts: []string{"", "  ", "key", "\t"},
			want:  "{key}",
		},
		{
			name:  "parts joined with single underscore",
			parts: []string{"Section", "Key"},
			want:  "{Section_Key}",
		},
		{
			// The leading-digit rule and the substitution pass both fire
			// on the first character, so the digit doubles to "__".
			name:  "leading digit doubles the underscore",
			parts: []string{"9abc"},
			want:  "{__abc}",
		},
		{
			name:  "leading digit in joined part",
			parts: []string{"Section", "1Key"},
			want:  "{Section___Key}",
		},
		{
			name:  "digit after first position is kept",
			parts: []string{"k9s"},
			want:  "{k9s}",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Placeholder(tt.parts...))
		})
	}
}

func TestPlaceholderShape(t *testing.T) {
	t.Parallel()

	got := Placeholder("a b", "c:d", "3e")

	assert.Equal(t, byte('{'), got[0])
	assert.Equal(t, byte('}'), got[len(got)-1])
	for _, r := range got[1 : len(got)-1] {
		assert.Contains(t, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789._", string(r))
	}
}
