// SPDX-License-Identifier: MPL-2.0

// Package user defines the User record benchmarked by userbench: a fixed-shape,
// immutable value with five typed fields, a canonical JSON wire form, an ordered
// field mapping, and copy-with-overrides semantics.
//
// The package carries two interchangeable codec engines over the same type.
// DirectCodec encodes, decodes and validates with hand-written per-field code;
// ReflectCodec goes through encoding/json reflection and tag-driven validation.
// Both must produce byte-identical JSON and agree on every accept/reject
// decision. Summarize and SummarizeReflect are the oracle that proves the two
// paths behaviorally interchangeable.
//
// Validation happens once, at the untyped boundary (FromJSON, FromMap,
// ApplyOverrides): a User value either fully exists with all five fields typed
// correctly or does not exist. Failures are reported as ValidationError or
// ParseError; the package never logs or prints.
package user
