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

package configdiag

import "fmt"

// Error describes a failure while assembling or loading a provider root.
// It records which provider or option the failure belongs to and the
// operation that was being performed. The report builder itself never
// produces an Error: a missing key is a normal report outcome.
type Error struct {
	Source    string // where the error occurred, e.g. "file-provider", "consul-provider"
	Operation string // the operation being performed, e.g. "load", "detect-format"
	Err       error  // the underlying error
}

// Error returns a formatted message with the source and operation context.
func (e *Error) Error() string {
	return fmt.Sprintf("configdiag error in %s during %s: %v", e.Source, e.Operation, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error with the provided context.
func NewError(source, operation string, err error) *Error {
	return &Error{
		Source:    source,
		Operation: operation,
		Err:       err,
	}
}
