// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"

	"cuelang.org/go/cue/cuecontext"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "test.cue"); err != nil {
			t.Errorf("FormatError(nil) = %v, want nil", err)
		}
	})

	t.Run("non-CUE error gains the file path", func(t *testing.T) {
		t.Parallel()

		err := FormatError(errors.New("disk on fire"), "test.cue")
		if err == nil {
			t.Fatal("FormatError() = nil, want error")
		}
		for _, want := range []string{"test.cue", "disk on fire"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("FormatError() = %v, missing %q", err, want)
			}
		}
	})

	t.Run("single violation yields ValidationError", func(t *testing.T) {
		t.Parallel()

		v := cuecontext.New().CompileString("a: int\na: \"str\"")
		if v.Err() == nil {
			t.Fatal("conflicting values did not produce an error")
		}

		verr, ok := errors.AsType[*ValidationError](FormatError(v.Err(), "data.cue"))
		if !ok {
			t.Fatal("FormatError() did not return a *ValidationError")
		}
		if verr.FilePath != "data.cue" {
			t.Errorf("FilePath = %q, want %q", verr.FilePath, "data.cue")
		}
		if verr.CUEPath != "a" {
			t.Errorf("CUEPath = %q, want %q", verr.CUEPath, "a")
		}
		if !strings.Contains(verr.Message, "conflicting") {
			t.Errorf("Message = %q, want a conflict description", verr.Message)
		}
	})

	t.Run("multiple violations list every path", func(t *testing.T) {
		t.Parallel()

		v := cuecontext.New().CompileString("a: int\na: \"x\"\nb: bool\nb: 3")
		if v.Err() == nil {
			t.Fatal("conflicting values did not produce an error")
		}

		err := FormatError(v.Err(), "data.cue")
		if err == nil {
			t.Fatal("FormatError() = nil, want error")
		}
		msg := err.Error()
		if !strings.Contains(msg, "validation failed") {
			t.Errorf("FormatError() = %q, missing the aggregate header", msg)
		}
		if !strings.Contains(msg, "a:") || !strings.Contains(msg, "b:") {
			t.Errorf("FormatError() = %q, missing a violation path", msg)
		}
	})
}

func TestJSONPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{"empty path", []string{}, ""},
		{"single field", []string{"iterations"}, "iterations"},
		{"nested field", []string{"dataset", "count"}, "dataset.count"},
		{"index mid-path", []string{"results", "0", "operation"}, "results[0].operation"},
		{"several indices", []string{"runs", "0", "results", "2", "engine"}, "runs[0].results[2].engine"},
		{"index after index", []string{"items", "0", "values", "1"}, "items[0].values[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := jsonPath(tt.path); got != tt.want {
				t.Errorf("jsonPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "with CUE path",
			err: &ValidationError{
				FilePath: "config.cue",
				CUEPath:  "output.format",
				Message:  "expected string, got int",
			},
			want: "config.cue: output.format: expected string, got int",
		},
		{
			name: "without CUE path",
			err: &ValidationError{
				FilePath: "config.cue",
				Message:  "syntax error",
			},
			want: "config.cue: syntax error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
