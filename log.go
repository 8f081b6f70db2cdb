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
	"log/slog"
)

// Level represents the severity a report is logged at.
type Level = slog.Level

const (
	// LevelTrace sits below slog's debug level, matching the finest
	// severity offered by the source-tracing wrappers.
	LevelTrace Level = slog.LevelDebug - 4
	// LevelDebug is the debug severity.
	LevelDebug = slog.LevelDebug
	// LevelInformation is the informational severity.
	LevelInformation = slog.LevelInfo
)

// Sink receives a finished report at a severity level. It is the only
// contact point between this package and the surrounding logging pipeline.
type Sink interface {
	Log(level Level, message string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(level Level, message string)

// Log implements Sink.
func (f SinkFunc) Log(level Level, message string) {
	f(level, message)
}

type slogSink struct {
	logger *slog.Logger
}

// Log implements Sink.
func (s *slogSink) Log(level Level, message string) {
	s.logger.Log(context.Background(), level, message)
}

// NewSlogSink wraps a slog.Logger as a Sink. A nil logger falls back to
// slog.Default.
func NewSlogSink(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogSink{logger: logger}
}

// ReportOption adjusts how a logged report is built.
type ReportOption func(c *reportConfig)

type reportConfig struct {
	compressed bool
	options    *Options
}

// Compressed suppresses report lines for providers that did not contribute
// a value for the traced key.
func Compressed(enabled bool) ReportOption {
	return func(c *reportConfig) {
		c.compressed = enabled
	}
}

// WithOptions overrides the process-wide default diagnostics options for a
// single logged report.
func WithOptions(opts *Options) ReportOption {
	return func(c *reportConfig) {
		c.options = opts
	}
}

// LogConfigurationKeySource builds the provider-source report for key and
// forwards it to the sink at the given level. The root's providers are
// queried in precedence order; a nil root is reported the same way as a root
// without providers. A nil sink is a no-op.
func LogConfigurationKeySource(sink Sink, level Level, root *Root, key string, opts ...ReportOption) {
	if sink == nil {
		return
	}

	var cfg reportConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var providers []Provider
	if root != nil {
		providers = root.Providers()
	}

	sink.Log(level, BuildReport(providers, key, cfg.compressed, cfg.options))
}

// LogConfigurationKeySourceAsTrace logs the report at trace severity.
func LogConfigurationKeySourceAsTrace(sink Sink, root *Root, key string, opts ...ReportOption) {
	LogConfigurationKeySource(sink, LevelTrace, root, key, opts...)
}

// LogConfigurationKeySourceAsDebug logs the report at debug severity.
func LogConfigurationKeySourceAsDebug(sink Sink, root *Root, key string, opts ...ReportOption) {
	LogConfigurationKeySource(sink, LevelDebug, root, key, opts...)
}

// LogConfigurationKeySourceAsInformation logs the report at informational
// severity.
func LogConfigurationKeySourceAsInformation(sink Sink, root *Root, key string, opts ...ReportOption) {
	LogConfigurationKeySource(sink, LevelInformation, root, key, opts...)
}
