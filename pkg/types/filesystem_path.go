// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFilesystemPath reports an empty or whitespace-only path.
// InvalidFilesystemPathError wraps it so callers can match with errors.Is.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

// FilesystemPath is a path on the local filesystem, absolute or
// relative. Validation only requires that it points somewhere, so the
// zero value ("") is invalid but no existence check is made.
type FilesystemPath string

// InvalidFilesystemPathError carries the offending value when a
// FilesystemPath fails IsValid.
type InvalidFilesystemPathError struct {
	Value FilesystemPath
}

func (p FilesystemPath) String() string { return string(p) }

// IsValid rejects empty and whitespace-only paths. The slice carries
// every violation found, matching the config field validators.
func (p FilesystemPath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidFilesystemPathError{Value: p}}
	}
	return true, nil
}

func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: must be non-empty", e.Value)
}

func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
