// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

var _ error = (*ActionableError)(nil)

func TestActionableErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load dataset"},
			want: "failed to load dataset",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "load dataset", Resource: "./users.json"},
			want: "failed to load dataset: ./users.json",
		},
		{
			name: "with cause",
			err: &ActionableError{
				Operation: "load configuration",
				Cause:     errors.New("syntax error at line 5"),
			},
			want: "failed to load configuration: syntax error at line 5",
		},
		{
			name: "resource and cause",
			err: &ActionableError{
				Operation: "load dataset",
				Resource:  "./users.json",
				Cause:     errors.New("file not found"),
			},
			want: "failed to load dataset: ./users.json: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableErrorUnwrapping(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ActionableError{Operation: "read corpus", Cause: cause}

	if err.Unwrap() != cause {
		t.Error("Unwrap() did not return the cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the cause")
	}
	if (&ActionableError{Operation: "read corpus"}).Unwrap() != nil {
		t.Error("Unwrap() without a cause should be nil")
	}
}

func TestActionableErrorFormat(t *testing.T) {
	t.Run("plain error stays one line", func(t *testing.T) {
		out := (&ActionableError{Operation: "load configuration"}).Format(false)
		if out != "failed to load configuration" {
			t.Errorf("Format(false) = %q", out)
		}
	})

	t.Run("suggestions become bullets", func(t *testing.T) {
		ae := &ActionableError{
			Operation:   "load dataset",
			Resource:    "./users.json",
			Suggestions: []string{"Run 'userbench gen'", "Check file permissions"},
		}
		out := ae.Format(false)
		for _, want := range []string{
			"failed to load dataset: ./users.json",
			"\n  • Run 'userbench gen'",
			"\n  • Check file permissions",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("Format(false) missing %q\ngot:\n%s", want, out)
			}
		}
	})

	t.Run("verbose appends the numbered chain", func(t *testing.T) {
		ae := &ActionableError{
			Operation: "export report",
			Cause: &ActionableError{
				Operation: "open report file",
				Cause:     errors.New("permission denied"),
			},
		}
		out := ae.Format(true)
		for _, want := range []string{
			"Error chain:",
			"1. failed to open report file: permission denied",
			"2. permission denied",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("Format(true) missing %q\ngot:\n%s", want, out)
			}
		}
	})

	t.Run("chain stays hidden without verbose", func(t *testing.T) {
		ae := &ActionableError{
			Operation: "load configuration",
			Cause:     errors.New("syntax error"),
		}
		out := ae.Format(false)
		if !strings.Contains(out, "failed to load configuration: syntax error") {
			t.Errorf("Format(false) = %q", out)
		}
		if strings.Contains(out, "Error chain:") {
			t.Errorf("Format(false) leaked the error chain:\n%s", out)
		}
	})
}

func TestHasSuggestions(t *testing.T) {
	if !(&ActionableError{Operation: "x", Suggestions: []string{"try this"}}).HasSuggestions() {
		t.Error("HasSuggestions() = false with one suggestion")
	}
	if (&ActionableError{Operation: "x"}).HasSuggestions() {
		t.Error("HasSuggestions() = true with none")
	}
}

func TestErrorContextBuild(t *testing.T) {
	t.Run("operation alone suffices", func(t *testing.T) {
		ae := NewErrorContext().WithOperation("validate configuration").Build()
		if ae == nil {
			t.Fatal("Build() = nil")
		}
		if ae.Operation != "validate configuration" {
			t.Errorf("Operation = %q", ae.Operation)
		}
	})

	t.Run("no operation yields nil", func(t *testing.T) {
		if ae := NewErrorContext().WithResource("some/path").Build(); ae != nil {
			t.Errorf("Build() = %v, want nil", ae)
		}
	})

	t.Run("all parts carried over", func(t *testing.T) {
		cause := errors.New("parse error")
		ae := NewErrorContext().
			WithOperation("load configuration").
			WithResource("./config.cue").
			WithSuggestion("Check CUE syntax").
			WithSuggestion("Run 'userbench config show'").
			Wrap(cause).
			Build()
		if ae == nil {
			t.Fatal("Build() = nil")
		}
		if ae.Operation != "load configuration" || ae.Resource != "./config.cue" {
			t.Errorf("Operation/Resource = %q/%q", ae.Operation, ae.Resource)
		}
		if len(ae.Suggestions) != 2 {
			t.Errorf("Suggestions = %v, want 2 entries", ae.Suggestions)
		}
		if ae.Cause != cause {
			t.Errorf("Cause = %v", ae.Cause)
		}
	})
}

func TestErrorContextBuildError(t *testing.T) {
	err := NewErrorContext().WithOperation("write report").BuildError()
	if err == nil {
		t.Fatal("BuildError() = nil")
	}
	if _, ok := errors.AsType[*ActionableError](err); !ok {
		t.Errorf("BuildError() = %T, want *ActionableError", err)
	}

	// The empty case must satisfy err == nil, not hide a typed nil inside
	// the interface.
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestErrorContextReuse(t *testing.T) {
	ctx := NewErrorContext().
		WithOperation("load configuration").
		WithResource("./config.cue").
		WithSuggestion("Check CUE syntax")

	err1 := ctx.Wrap(errors.New("error 1")).Build()
	err2 := ctx.Wrap(errors.New("error 2")).Build()

	if err1.Cause.Error() == err2.Cause.Error() {
		t.Error("second Wrap did not replace the cause")
	}
	if err1.Operation != err2.Operation {
		t.Error("reuse lost the shared operation")
	}
}
