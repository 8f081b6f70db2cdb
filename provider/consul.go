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

	"github.com/hashicorp/consul/api"

	"rivaas.dev/configdiag/codec"
)

// ConsulKV defines the Consul key-value operations used by the provider.
// The indirection enables testing with a mock implementation.
type ConsulKV interface {
	Get(key string, q *api.QueryOptions) (*api.KVPair, *api.QueryMeta, error)
}

// Consul is a provider that reads its values from a single key in Consul's
// key-value store. The client is configured through the standard Consul
// environment variables (CONSUL_HTTP_ADDR, CONSUL_HTTP_TOKEN).
//
// TryGet answers from the data decoded by the last Load. A key missing from
// Consul is not an error; the provider simply holds no values.
type Consul struct {
	kv        ConsulKV
	path      string
	lastIndex uint64
	decoder   codec.Decoder
	values    map[string]any
}

// NewConsul creates a Consul provider for the given KV path. If kv is nil,
// the default Consul client's KV endpoint is used.
//
// Errors:
//   - Returns error if the Consul client cannot be created
func NewConsul(path string, decoder codec.Decoder, kv ConsulKV) (*Consul, error) {
	if kv == nil {
		client, err := api.NewClient(api.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create consul client: %w", err)
		}
		kv = client.KV()
	}
	return &Consul{
		kv:      kv,
		path:    path,
		decoder: decoder,
	}, nil
}

// Load fetches and decodes the configured key, replacing the provider's
// value snapshot. A missing key yields an empty snapshot without error.
//
// Errors:
//   - Returns error if the Consul query fails
//   - Returns error if decoding the value fails
func (c *Consul) Load(ctx context.Context) error {
	pair, meta, err := c.kv.Get(c.path, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to get consul key: %w", err)
	}

	if pair == nil {
		c.values = make(map[string]any)
		return nil
	}

	if meta != nil {
		c.lastIndex = meta.LastIndex
	}

	var values map[string]any
	if err := c.decoder.Decode(pair.Value, &values); err != nil {
		return fmt.Errorf("failed to decode consul value: %w", err)
	}

	c.values = normalizeKeys(values)
	return nil
}

// TryGet reports whether the loaded Consul data holds a value for the key.
func (c *Consul) TryGet(key string) (string, bool) {
	return tryGet(c.values, key)
}

// Values returns the decoded value set of the last Load.
func (c *Consul) Values() map[string]any {
	return c.values
}

// String returns the provider identity, including the KV path.
func (c *Consul) String() string {
	return "consul: " + c.path
}
