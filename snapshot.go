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
	"fmt"
	"io"

	"dario.cat/mergo"
	"github.com/spf13/cast"

	"rivaas.dev/configdiag/codec"
)

// Values returns the effective configuration view: the value sets of all
// providers implementing [Valuer], merged in provider order with override
// behavior so later providers win. Providers that do not expose their values
// are skipped. The result is a fresh map owned by the caller; it shares no
// structure with the providers' live snapshots, so merging never writes back
// into a provider.
func (r *Root) Values() (map[string]any, error) {
	merged := make(map[string]any)
	if r == nil {
		return merged, nil
	}

	for i, p := range r.providers {
		v, ok := p.(Valuer)
		if !ok {
			continue
		}
		values := v.Values()
		if values == nil {
			continue
		}
		// Merge a copy: mergo stores nested maps by reference, and the
		// provider's snapshot must stay untouched.
		if err := mergo.Map(&merged, copyValues(values), mergo.WithOverride); err != nil {
			return nil, NewError(fmt.Sprintf("provider[%d]", i), "merge", err)
		}
	}

	return merged, nil
}

// copyValues deep-copies a value tree down to its nested maps. Leaf values
// are shared; they are never mutated by the merge.
func copyValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if nested, ok := v.(map[string]any); ok {
			out[k] = copyValues(nested)
			continue
		}
		out[k] = v
	}
	return out
}

// WriteSnapshot encodes the effective configuration view to w in the given
// format, with every value under a sensitive key path replaced by the
// obfuscator's output. Key paths are joined with ':' before matching, so a
// matcher firing on "password" also redacts "db:password". A nil opts uses
// the process-wide default options.
func (r *Root) WriteSnapshot(w io.Writer, codecType codec.Type, opts *Options) error {
	if opts == nil {
		opts = Default()
	}

	encoder, err := codec.GetEncoder(codecType)
	if err != nil {
		return NewError("snapshot", "get-encoder", err)
	}

	values, err := r.Values()
	if err != nil {
		return err
	}

	data, err := encoder.Encode(redactValues(values, "", opts))
	if err != nil {
		return NewError("snapshot", "encode", err)
	}

	if _, err = w.Write(data); err != nil {
		return NewError("snapshot", "write", err)
	}

	return nil
}

// redactValues walks the value tree and replaces every leaf under a
// sensitive key path with the obfuscated rendering of its string form.
func redactValues(values map[string]any, prefix string, opts *Options) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		path := k
		if prefix != "" {
			path = prefix + ":" + k
		}
		if nested, ok := v.(map[string]any); ok {
			out[k] = redactValues(nested, path, opts)
			continue
		}
		if opts.KeyMatcher.Matches(path) {
			out[k] = opts.Obfuscator.Obfuscate(cast.ToString(v))
			continue
		}
		out[k] = v
	}
	return out
}
