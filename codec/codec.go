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

// Package codec provides the encoders and decoders used by configuration
// providers and snapshot writers. YAML, JSON, and TOML codecs register
// themselves at init time; additional codecs can be registered under their
// own [Type].
package codec

import "fmt"

// Type identifies a registered codec.
type Type string

// Encoder converts Go values into encoded byte representations.
// Implementations must be safe for concurrent use.
type Encoder interface {
	Encode(v any) ([]byte, error)
}

// Decoder converts encoded byte representations into Go values.
// Implementations must be safe for concurrent use.
type Decoder interface {
	Decode(data []byte, v any) error
}

var (
	encoders = make(map[Type]Encoder)
	decoders = make(map[Type]Decoder)
)

// RegisterEncoder registers an encoder under the given type, replacing any
// previous registration. Registration is not synchronized; call it from
// init functions or before concurrent use.
func RegisterEncoder(name Type, encoder Encoder) {
	encoders[name] = encoder
}

// RegisterDecoder registers a decoder under the given type, replacing any
// previous registration.
func RegisterDecoder(name Type, decoder Decoder) {
	decoders[name] = decoder
}

// GetEncoder returns the encoder registered for the given type.
func GetEncoder(name Type) (Encoder, error) {
	encoder, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("encoder not found for type: %s", name)
	}
	return encoder, nil
}

// GetDecoder returns the decoder registered for the given type.
func GetDecoder(name Type) (Decoder, error) {
	decoder, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("decoder not found for type: %s", name)
	}
	return decoder, nil
}
