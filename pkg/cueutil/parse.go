// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Result carries the outcome of a successful parse.
type Result[T any] struct {
	// Value is the decoded Go value.
	Value *T

	// Unified is the user data unified with the schema, kept around for
	// callers that need to inspect fields beyond what T captures.
	Unified cue.Value
}

// ParseAndDecode compiles schema, compiles data, unifies the two under the
// definition named by root (for example "#Config"), validates the result,
// and decodes it into T.
//
// Validation and decode failures come back as a *ValidationError, or as one
// error listing every violation when there are several, so they can be
// printed to users without further translation. Schema compile failures are
// internal errors: the schema ships with the binary and is not user input.
func ParseAndDecode[T any](schema string, data []byte, root string, opts ...Option) (*Result[T], error) {
	o := applyOptions(opts)

	filename := o.filename
	if filename == "" {
		filename = "<input>"
	}

	// Reject oversized input before handing it to the CUE evaluator.
	if int64(len(data)) > o.maxFileSize {
		return nil, fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), o.maxFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	def := schemaValue.LookupPath(cue.ParsePath(root))
	if def.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", root, def.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	unified := def.Unify(userValue)
	if o.concrete {
		if err := unified.Validate(cue.Concrete(true)); err != nil {
			return nil, FormatError(err, filename)
		}
	} else if err := unified.Validate(); err != nil {
		return nil, FormatError(err, filename)
	}

	var decoded T
	if err := unified.Decode(&decoded); err != nil {
		return nil, FormatError(err, filename)
	}

	return &Result[T]{Value: &decoded, Unified: unified}, nil
}
