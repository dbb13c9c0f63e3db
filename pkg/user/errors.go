// SPDX-License-Identifier: MPL-2.0

package user

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel error wrapped by ValidationError.
var ErrValidation = errors.New("user validation failed")

// ErrParse is the sentinel error wrapped by ParseError.
var ErrParse = errors.New("user json parse failed")

type (
	// ValidationError reports a required field that is absent or holds a value
	// incompatible with its declared type. It is returned from construction,
	// decoding and copy-with-overrides; a failing operation never yields a
	// partially populated User.
	ValidationError struct {
		// Field is the offending field name, or "" when the problem concerns
		// the record as a whole (for example a non-object JSON root).
		Field  string
		Reason string
	}

	// ParseError reports JSON text that is not syntactically valid. Offset is
	// the byte position at which scanning failed, where known.
	ParseError struct {
		Offset int
		Reason string
	}
)

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid user: %s", e.Reason)
	}
	return fmt.Sprintf("invalid user field %q: %s", e.Field, e.Reason)
}

// Unwrap returns ErrValidation for errors.Is() compatibility.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid user json at offset %d: %s", e.Offset, e.Reason)
}

// Unwrap returns ErrParse for errors.Is() compatibility.
func (e *ParseError) Unwrap() error { return ErrParse }
