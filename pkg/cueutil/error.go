// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// ValidationError is a single schema violation tied to a file and a CUE path.
type ValidationError struct {
	// FilePath is the file being validated.
	FilePath string

	// CUEPath locates the offending value, in JSON path notation
	// (for example "output.format" or "results[0].operation").
	CUEPath string

	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.CUEPath != "" {
		return fmt.Sprintf("%s: %s: %s", e.FilePath, e.CUEPath, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// FormatError turns a CUE evaluation error into user-facing form.
//
// A single violation comes back as a *ValidationError. Multiple violations
// are collapsed into one error naming every offending path:
//
//	config.cue: validation failed:
//	  dataset.count: invalid value -1 (out of bound >0)
//	  output.verbose: conflicting values true and "yes"
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrs := errors.Errors(err)
	if len(cueErrs) == 0 {
		// Not a CUE error, keep it intact.
		return fmt.Errorf("%s: %w", filePath, err)
	}

	violations := make([]*ValidationError, 0, len(cueErrs))
	for _, e := range cueErrs {
		pathStr := jsonPath(errors.Path(e))
		msg := e.Error()

		// CUE repeats the path inside some messages; strip it so the
		// formatted error names the path exactly once.
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimPrefix(msg, pathStr)
			msg = strings.TrimPrefix(msg, ":")
			msg = strings.TrimSpace(msg)
		}

		violations = append(violations, &ValidationError{
			FilePath: filePath,
			CUEPath:  pathStr,
			Message:  msg,
		})
	}

	if len(violations) == 1 {
		return violations[0]
	}

	lines := make([]string, len(violations))
	for i, v := range violations {
		if v.CUEPath != "" {
			lines[i] = fmt.Sprintf("%s: %s", v.CUEPath, v.Message)
		} else {
			lines[i] = v.Message
		}
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// jsonPath renders a CUE error path in JSON path notation. CUE reports paths
// as flat string slices with numeric elements for list indices, so
// ["results", "0", "operation"] becomes "results[0].operation".
func jsonPath(path []string) string {
	if len(path) == 0 {
		return ""
	}

	var b strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			b.WriteString("[")
			b.WriteString(part)
			b.WriteString("]")
			continue
		}
		if i > 0 {
			b.WriteString(".")
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
