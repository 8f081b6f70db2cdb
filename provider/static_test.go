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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTryGet(t *testing.T) {
	t.Parallel()

	p := NewStatic("defaults", map[string]any{
		"Db": map[string]any{
			"Host": "localhost",
			"Port": 5432,
		},
		"debug":       true,
		"app.version": "1.2.3",
	})

	tests := []struct {
		name      string
		key       string
		want      string
		wantFound bool
	}{
		{name: "colon delimited", key: "Db:Host", want: "localhost", wantFound: true},
		{name: "dot delimited", key: "db.host", want: "localhost", wantFound: true},
		{name: "mixed case", key: "DB:HOST", want: "localhost", wantFound: true},
		{name: "integer stringified", key: "db.port", want: "5432", wantFound: true},
		{name: "boolean stringified", key: "debug", want: "true", wantFound: true},
		{name: "pre-flattened key matches directly", key: "App:Version", want: "1.2.3", wantFound: true},
		{name: "missing leaf", key: "db.name", wantFound: false},
		{name: "missing section", key: "cache.ttl", wantFound: false},
		{name: "section itself is not a value", key: "db", wantFound: false},
		{name: "empty key", key: "", wantFound: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, found := p.TryGet(tt.key)
			require.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStaticIdentity(t *testing.T) {
	t.Parallel()

	p := NewStatic("defaults: built-in", nil)
	assert.Equal(t, "defaults: built-in", p.String())
}

func TestStaticValuesNormalized(t *testing.T) {
	t.Parallel()

	p := NewStatic("defaults", map[string]any{
		"Server": map[string]any{"Port": 8080},
	})

	values := p.Values()
	server, ok := values["server"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 8080, server["port"])
}

func TestStaticNilValues(t *testing.T) {
	t.Parallel()

	p := NewStatic("empty", nil)
	_, found := p.TryGet("anything")
	assert.False(t, found)
	assert.Nil(t, p.Values())
}
