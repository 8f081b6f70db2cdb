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
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// CapturedMessage is a single report recorded by a CaptureSink.
type CapturedMessage struct {
	Level   Level
	Message string
}

// CaptureSink is a Sink that records every report it receives, for tests.
// The zero value is ready to use and safe for concurrent logging.
type CaptureSink struct {
	mu       sync.Mutex
	messages []CapturedMessage
}

// Log implements Sink.
func (s *CaptureSink) Log(level Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, CapturedMessage{Level: level, Message: message})
}

// Messages returns a copy of the recorded reports in arrival order.
func (s *CaptureSink) Messages() []CapturedMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CapturedMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Last returns the most recently recorded report.
func (s *CaptureSink) Last() (CapturedMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return CapturedMessage{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// TestRoot creates a Root with the given options for testing. It fails the
// test if creation fails.
func TestRoot(t *testing.T, opts ...Option) *Root {
	t.Helper()
	root, err := New(opts...)
	require.NoError(t, err, "failed to create test root")
	return root
}

// TestRootWithValues creates a Root holding a single in-memory provider with
// the given identity and values.
func TestRootWithValues(t *testing.T, name string, values map[string]any) *Root {
	t.Helper()
	return TestRoot(t, WithValues(name, values))
}
