// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize caps how much input ParseAndDecode accepts (5MB).
// The limit keeps a runaway or hostile file from exhausting memory during
// CUE evaluation.
const DefaultMaxFileSize int64 = 5 * 1024 * 1024

// Option adjusts how ParseAndDecode treats its input.
type Option func(*options)

type options struct {
	filename    string
	maxFileSize int64
	concrete    bool
}

func applyOptions(opts []Option) options {
	o := options{
		maxFileSize: DefaultMaxFileSize,
		concrete:    true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFilename names the input in error messages. Without it, errors refer
// to the input as "<input>".
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithConcrete controls whether every field must hold a concrete value
// after unification. The default requires concrete values; pass false for
// files where optional fields may stay unset.
func WithConcrete(concrete bool) Option {
	return func(o *options) { o.concrete = concrete }
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(size int64) Option {
	return func(o *options) { o.maxFileSize = size }
}
