// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"userbench/pkg/types"
)

// ExitError lets a RunE handler request a specific process exit code
// while still unwinding through cobra and fang normally. Execute
// unwraps it from the returned error chain and calls os.Exit with
// Code; handlers themselves never exit directly.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }
