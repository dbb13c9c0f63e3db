// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidIterations is the sentinel error wrapped by InvalidIterationsError.
var ErrInvalidIterations = errors.New("invalid iteration count")

// ErrInvalidWarmup is the sentinel error wrapped by InvalidWarmupError.
var ErrInvalidWarmup = errors.New("invalid warmup count")

type (
	// Iterations is the number of timed calls per measured operation.
	// Must be positive.
	Iterations int

	// InvalidIterationsError is returned when an Iterations value is not
	// positive.
	InvalidIterationsError struct {
		Value Iterations
	}

	// Warmup is the number of untimed calls made before sampling starts.
	// The zero value is valid and means no warmup.
	Warmup int

	// InvalidWarmupError is returned when a Warmup value is negative.
	InvalidWarmupError struct {
		Value Warmup
	}
)

// String returns the decimal string representation of the Iterations.
func (i Iterations) String() string { return strconv.Itoa(int(i)) }

// Validate returns an error if the Iterations is not positive.
func (i Iterations) Validate() error {
	if i <= 0 {
		return &InvalidIterationsError{Value: i}
	}
	return nil
}

// Error implements the error interface for InvalidIterationsError.
func (e *InvalidIterationsError) Error() string {
	return fmt.Sprintf("invalid iteration count %d: must be positive", e.Value)
}

// Unwrap returns ErrInvalidIterations for errors.Is() compatibility.
func (e *InvalidIterationsError) Unwrap() error { return ErrInvalidIterations }

// String returns the decimal string representation of the Warmup.
func (w Warmup) String() string { return strconv.Itoa(int(w)) }

// Validate returns an error if the Warmup is negative.
func (w Warmup) Validate() error {
	if w < 0 {
		return &InvalidWarmupError{Value: w}
	}
	return nil
}

// Error implements the error interface for InvalidWarmupError.
func (e *InvalidWarmupError) Error() string {
	return fmt.Sprintf("invalid warmup count %d: must be zero or positive", e.Value)
}

// Unwrap returns ErrInvalidWarmup for errors.Is() compatibility.
func (e *InvalidWarmupError) Unwrap() error { return ErrInvalidWarmup }
