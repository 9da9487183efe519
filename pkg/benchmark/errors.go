// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package benchmark

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvocationError is returned when the benchmark binary could not be started
// or exited with non-zero status.
type InvocationError struct {
	Mode     Mode
	Command  string
	ExitCode int
	Err      error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("benchmark invocation failed for %s mode (exit code %d): %v", e.Mode, e.ExitCode, e.Err)
}

// Cause returns the underlying error.
func (e *InvocationError) Cause() error {
	return e.Err
}

// Unwrap returns the underlying error.
func (e *InvocationError) Unwrap() error {
	return e.Err
}

// IsInvocationError returns true when err was caused by a failed benchmark invocation.
func IsInvocationError(err error) bool {
	var invocationErr *InvocationError
	return errors.As(err, &invocationErr)
}
