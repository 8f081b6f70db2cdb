// Copyright 2025 The Rivaas Authors
// Copyright 2025 Company.info B.V.
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
	"context"
	"fmt"
	"os"

	"rivaas.dev/configdiag/codec"
)

// File is a provider that reads its values from a configuration file.
// TryGet answers from the data decoded by the last Load; before the first
// Load every key is absent.
type File struct {
	path    string
	decoder codec.Decoder
	values  map[string]any
}

// NewFile creates a File provider for the given path. The decoder determines
// how the file content is parsed.
func NewFile(path string, decoder codec.Decoder) *File {
	return &File{
		path:    path,
		decoder: decoder,
	}
}

// Load reads and decodes the file, replacing the provider's value snapshot.
//
// Errors:
//   - Returns error if the file cannot be read
//   - Returns error if decoding fails
func (f *File) Load(context.Context) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var values map[string]any
	if err = f.decoder.Decode(data, &values); err != nil {
		return fmt.Errorf("failed to decode file: %w", err)
	}

	f.values = normalizeKeys(values)
	return nil
}

// TryGet reports whether the loaded file holds a value for the key.
func (f *File) TryGet(key string) (string, bool) {
	return tryGet(f.values, key)
}

// Values returns the decoded value set of the last Load.
func (f *File) Values() map[string]any {
	return f.values
}

// String returns the provider identity, including the file path.
func (f *File) String() string {
	return "file: " + f.path
}
