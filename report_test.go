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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider is a fixed-answer provider that counts lookups.
type stubProvider struct {
	name  string
	value string
	found bool
	calls int
}

func (p *stubProvider) TryGet(string) (string, bool) {
	p.calls++
	return p.value, p.found
}

func (p *stubProvider) String() string {
	return p.name
}

func TestBuildReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		providers  []Provider
		key        string
		compressed bool
		opts       *Options
		want       string
	}{
		{
			name:      "no providers",
			providers: nil,
			key:       "Db:Password",
			want:      "Cannot track Db:Password. No configuration providers found.",
		},
		{
			name: "raw value is quoted",
			providers: []Provider{
				&stubProvider{name: "B", value: "srv1", found: true},
			},
			key:  "Db:Host",
			want: "Provider sources for value of Db:Host\n* B ==> \"srv1\"",
		},
		{
			name: "sensitive key is obfuscated for every contributor",
			providers: []Provider{
				&stubProvider{name: "A"},
				&stubProvider{name: "B", value: "prod", found: true},
			},
			key:  "Db:Password",
			want: "Provider sources for value of Db:Password\n* A ==> null\n* B ==> ***",
		},
		{
			name: "compressed keeps only contributing providers",
			providers: []Provider{
				&stubProvider{name: "A"},
				&stubProvider{name: "B", value: "srv1", found: true},
			},
			key:        "Db:Host",
			compressed: true,
			want:       "Provider sources for value of Db:Host\n* B ==> \"srv1\"",
		},
		{
			name: "not found anywhere lists null lines and summary",
			providers: []Provider{
				&stubProvider{name: "A"},
				&stubProvider{name: "B"},
			},
			key: "Db:Host",
			want: "Provider sources for value of Db:Host\n" +
				"* A ==> null\n* B ==> null\n" +
				"Db:Host not found in any provider.",
		},
		{
			name: "not found anywhere compressed reads as one sentence",
			providers: []Provider{
				&stubProvider{name: "A"},
				&stubProvider{name: "B"},
			},
			key:        "Db:Host",
			compressed: true,
			want:       "Provider sources for value of Db:Host were not found.",
		},
		{
			name: "provider order is preserved",
			providers: []Provider{
				&stubProvider{name: "file: base.yaml", value: "1", found: true},
				&stubProvider{name: "file: override.yaml", value: "2", found: true},
				&stubProvider{name: "env: APP_*", value: "3", found: true},
			},
			key: "retries",
			want: "Provider sources for value of retries\n" +
				"* file: base.yaml ==> \"1\"\n" +
				"* file: override.yaml ==> \"2\"\n" +
				"* env: APP_* ==> \"3\"",
		},
		{
			name: "custom obfuscator output is used verbatim",
			providers: []Provider{
				&stubProvider{name: "B", value: "hunter22", found: true},
			},
			key:  "api_key",
			opts: NewOptions(WithObfuscator(PartialObfuscator(2))),
			want: "Provider sources for value of api_key\n* B ==> hu***22",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BuildReport(tt.providers, tt.key, tt.compressed, tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildReportNeverLeaksSensitiveValue(t *testing.T) {
	t.Parallel()

	providers := []Provider{
		&stubProvider{name: "A"},
		&stubProvider{name: "B", value: "prod", found: true},
	}

	report := BuildReport(providers, "Db:Password", false, nil)

	assert.Contains(t, report, "* A ==> null")
	assert.Contains(t, report, "* B ==> ***")
	assert.NotContains(t, report, "prod")
}

func TestBuildReportQueriesEachProviderOnce(t *testing.T) {
	t.Parallel()

	a := &stubProvider{name: "A"}
	b := &stubProvider{name: "B", value: "x", found: true}

	BuildReport([]Provider{a, b}, "Db:Host", false, nil)

	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestBuildReportIsIdempotent(t *testing.T) {
	t.Parallel()

	providers := []Provider{
		&stubProvider{name: "A", value: "v", found: true},
		&stubProvider{name: "B"},
	}

	first := BuildReport(providers, "section.key", true, nil)
	second := BuildReport(providers, "section.key", true, nil)

	require.Equal(t, first, second)
}

func TestBuildReportSensitivityIsDecidedOncePerCall(t *testing.T) {
	t.Parallel()

	// A matcher that alternates answers would break uniformity if it were
	// consulted per provider; the report must treat every line the same.
	hits := 0
	opts := NewOptions(WithKeyMatcher(MatcherFunc(func(string) bool {
		hits++
		return true
	})))

	providers := []Provider{
		&stubProvider{name: "A", value: "one", found: true},
		&stubProvider{name: "B", value: "two", found: true},
	}

	report := BuildReport(providers, "token", false, opts)

	assert.Equal(t, 1, hits)
	assert.Equal(t, 2, strings.Count(report, "==> ***"))
}
