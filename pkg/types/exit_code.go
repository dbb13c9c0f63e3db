// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidExitCode reports an exit code outside the POSIX range.
// InvalidExitCodeError wraps it so callers can match with errors.Is.
var ErrInvalidExitCode = errors.New("invalid exit code")

// ExitCode is a process exit status. POSIX constrains it to 0-255,
// with 0 meaning success, so the zero value is the success status.
type ExitCode int

// InvalidExitCodeError carries the offending value when an ExitCode
// fails Validate.
type InvalidExitCodeError struct {
	Value ExitCode
}

func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d out of range 0-255", e.Value)
}

func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate rejects codes outside 0-255.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess reports whether the code is the conventional success status.
func (c ExitCode) IsSuccess() bool { return c == 0 }

func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
