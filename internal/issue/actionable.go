// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError carries what a command was doing when it failed, the
// file or entity involved, and concrete suggestions for getting past the
// failure. Commands print it through Format; errors.Is/As traverse it
// through Unwrap.
//
// Construct it with the ErrorContext builder:
//
//	return issue.NewErrorContext().
//		WithOperation("load configuration").
//		WithResource(path).
//		WithSuggestion("Run 'userbench config init' to create one").
//		Wrap(err).
//		BuildError()
type ActionableError struct {
	// Operation is a verb phrase naming the attempt, such as
	// "load configuration" or "export report".
	Operation string

	// Resource is the file, path or entity involved, if any.
	Resource string

	// Suggestions are remediation hints shown under the message.
	Suggestions []string

	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the one-line form: operation, then resource, then cause,
// colon separated. Suggestions are not included; they belong to Format.
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the cause for use with errors.Is/As.
func (e *ActionableError) Unwrap() error { return e.Cause }

// HasSuggestions reports whether any suggestions were attached.
func (e *ActionableError) HasSuggestions() bool { return len(e.Suggestions) > 0 }

// Format renders the error for terminal display:
//
//	failed to <operation>: <resource>: <cause message>
//
//	  • <suggestion 1>
//	  • <suggestion 2>
//
// With verbose set, the numbered error chain under the cause follows.
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder
	b.WriteString(e.Error())

	if e.HasSuggestions() {
		b.WriteString("\n")
		for _, s := range e.Suggestions {
			b.WriteString("\n  • ")
			b.WriteString(s)
		}
	}

	if verbose && e.Cause != nil {
		b.WriteString("\n\nError chain:")
		depth := 1
		for err := e.Cause; err != nil; err = errors.Unwrap(err) {
			fmt.Fprintf(&b, "\n  %d. %s", depth, err)
			depth++
		}
	}

	return b.String()
}

// ErrorContext accumulates the parts of an ActionableError. A context can
// be prepared up front (operation, resource) and completed at the failure
// site (suggestion, cause).
type ErrorContext struct {
	operation   string
	resource    string
	suggestions []string
	cause       error
}

// NewErrorContext returns an empty ErrorContext builder.
func NewErrorContext() *ErrorContext { return &ErrorContext{} }

// WithOperation sets the operation, a verb phrase such as
// "validate configuration".
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource sets the file, path or entity involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithSuggestion appends one remediation hint. Call repeatedly to stack
// several.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// Wrap records the underlying error as the cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build assembles the ActionableError. It returns nil when no operation was
// set; an ActionableError without an operation has nothing to say.
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// BuildError is Build for return statements: the nil case comes back as a
// nil error interface, not a typed nil pointer.
func (c *ErrorContext) BuildError() error {
	ae := c.Build()
	if ae == nil {
		return nil
	}
	return ae
}
