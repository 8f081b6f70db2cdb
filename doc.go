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

// Package configdiag traces where layered configuration values come from.
//
// Given a configuration key and an ordered set of providers, the package
// builds a human-readable report listing which provider(s) supplied a value
// for that key, in precedence order, with each provider's contribution.
// Values of sensitive keys (passwords, tokens, credentials) are obfuscated
// before they reach the report.
//
// # Quick Start
//
// Build a provider root and trace a key:
//
//	root := configdiag.MustNew(
//	    configdiag.WithFile("config.yaml"),
//	    configdiag.WithEnv("APP_"),
//	)
//	if err := root.Load(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
//	report := configdiag.BuildReport(root.Providers(), "server.port", false, nil)
//	fmt.Println(report)
//
// Or forward the report straight to a logger:
//
//	sink := configdiag.NewSlogSink(slog.Default())
//	configdiag.LogConfigurationKeySourceAsDebug(sink, root, "db.password")
//
// # Report Shape
//
// A report consists of a header naming the traced key, one line per provider
// stating its contribution (or "null" when the provider has no value for the
// key), and a trailing summary when no provider contributed at all:
//
//	Provider sources for value of db.password
//	* file: config.yaml ==> null
//	* env: APP_* ==> ***
//	db.password not found in any provider.
//
// Passing compressed=true suppresses the "null" lines so only contributing
// providers appear.
//
// # Sensitive Values
//
// Whether a key is sensitive is decided once per report from the key name
// alone, using the KeyMatcher in [Options]. When the matcher fires, every
// contributing provider's value is replaced by the obfuscator's output;
// non-sensitive values appear raw, wrapped in double quotes. The process-wide
// default options can be replaced with [SetDefault], but call sites should
// prefer passing options explicitly.
//
// # Providers
//
// Anything implementing [Provider] can be traced. The
// rivaas.dev/configdiag/provider package ships adapters for in-memory maps,
// files (YAML, JSON, TOML), environment variables, and Consul's key-value
// store. The [Root] aggregate holds providers in precedence order and offers
// a merged snapshot of their values for diagnostic dumps.
//
// # Placeholders
//
// [Placeholder] is a small standalone utility that normalizes free-text
// label fragments into a single brace-delimited token safe for use as a
// templated identifier.
package configdiag
