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
	"context"
	"errors"
	"fmt"
	"os"

	"rivaas.dev/configdiag/codec"
	"rivaas.dev/configdiag/provider"
)

// Option is a functional option that configures a Root.
type Option func(r *Root) error

// Root is the ordered aggregate of all active providers for a configuration
// instance. Provider order reflects configuration precedence: later
// providers typically override earlier ones. The root itself does not
// resolve precedence; it hands the ordered set to the report builder, which
// reports each layer's contribution.
type Root struct {
	providers []Provider
}

// WithProvider appends a provider to the root.
func WithProvider(p Provider) Option {
	return func(r *Root) error {
		if p == nil {
			return errors.New("provider cannot be nil")
		}
		r.providers = append(r.providers, p)
		return nil
	}
}

// WithValues appends an in-memory provider with the given identity and
// values. Nested maps create key segments.
func WithValues(name string, values map[string]any) Option {
	return func(r *Root) error {
		r.providers = append(r.providers, provider.NewStatic(name, values))
		return nil
	}
}

// WithFile appends a file provider. The format is detected from the file
// extension (.yaml, .yml, .json, .toml); use WithFileAs for files without an
// extension. Paths support environment variable expansion using ${VAR} or
// $VAR syntax.
func WithFile(path string) Option {
	return func(r *Root) error {
		path = os.ExpandEnv(path)

		format, err := detectFormat(path)
		if err != nil {
			return NewError("file-provider", "detect-format", err)
		}

		decoder, err := codec.GetDecoder(format)
		if err != nil {
			return NewError("file-provider", "get-decoder", err)
		}

		r.providers = append(r.providers, provider.NewFile(path, decoder))
		return nil
	}
}

// WithFileAs appends a file provider with an explicit format, for files
// without an extension or with a misleading one.
func WithFileAs(path string, codecType codec.Type) Option {
	return func(r *Root) error {
		path = os.ExpandEnv(path)

		decoder, err := codec.GetDecoder(codecType)
		if err != nil {
			return NewError("file-provider", "get-decoder", err)
		}

		r.providers = append(r.providers, provider.NewFile(path, decoder))
		return nil
	}
}

// WithEnv appends an environment variable provider. Only variables starting
// with prefix are visible; underscores in the remainder of the variable name
// create key segments, so APP_DB_PASSWORD surfaces as db.password for
// prefix "APP_".
func WithEnv(prefix string) Option {
	return func(r *Root) error {
		r.providers = append(r.providers, provider.NewEnv(prefix))
		return nil
	}
}

// WithConsul appends a Consul key-value provider for the given path. The
// format is detected from the path extension. If CONSUL_HTTP_ADDR is not
// set, the option is silently skipped so development setups work without a
// Consul server.
func WithConsul(path string) Option {
	return func(r *Root) error {
		if os.Getenv("CONSUL_HTTP_ADDR") == "" {
			return nil
		}

		path = os.ExpandEnv(path)

		format, err := detectFormat(path)
		if err != nil {
			return NewError("consul-provider", "detect-format", err)
		}

		decoder, err := codec.GetDecoder(format)
		if err != nil {
			return NewError("consul-provider", "get-decoder", err)
		}

		p, err := provider.NewConsul(path, decoder, nil)
		if err != nil {
			return NewError("consul-provider", "create-client", err)
		}

		r.providers = append(r.providers, p)
		return nil
	}
}

// WithConsulAs appends a Consul key-value provider with an explicit format.
// Like WithConsul, the option is silently skipped when CONSUL_HTTP_ADDR is
// not set.
func WithConsulAs(path string, codecType codec.Type) Option {
	return func(r *Root) error {
		if os.Getenv("CONSUL_HTTP_ADDR") == "" {
			return nil
		}

		path = os.ExpandEnv(path)

		decoder, err := codec.GetDecoder(codecType)
		if err != nil {
			return NewError("consul-provider", "get-decoder", err)
		}

		p, err := provider.NewConsul(path, decoder, nil)
		if err != nil {
			return NewError("consul-provider", "create-client", err)
		}

		r.providers = append(r.providers, p)
		return nil
	}
}

// New creates a Root with the provided options. Option errors are collected
// and returned alongside the partially assembled root.
func New(options ...Option) (*Root, error) {
	var errs error
	r := &Root{providers: []Provider{}}

	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(r); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return r, errs
}

// MustNew creates a Root or panics if any option fails. Use it in main() or
// initialization code where panicking is acceptable; otherwise use New.
func MustNew(options ...Option) *Root {
	r, err := New(options...)
	if err != nil {
		panic(fmt.Sprintf("configdiag: failed to create provider root: %v", err))
	}
	return r
}

// Providers returns the providers in precedence order. The returned slice
// must not be modified.
func (r *Root) Providers() []Provider {
	if r == nil {
		return nil
	}
	return r.providers
}

// Load loads every provider that reads from an external location, in
// provider order. The first failure aborts the load.
//
// Errors:
//   - Returns error if ctx is nil
//   - Returns [Error] wrapping the failing provider's load error
func (r *Root) Load(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context cannot be nil")
	}

	for _, p := range r.providers {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		loader, ok := p.(Loader)
		if !ok {
			continue
		}
		if err := loader.Load(ctx); err != nil {
			return NewError(p.String(), "load", err)
		}
	}

	return nil
}
