// SPDX-License-Identifier: MPL-2.0

// Package issue turns failures into guidance the user can act on.
//
// It has two halves: a registry of Markdown help cards rendered with
// glamour, one per failure class the CLI can hit (configuration
// loading, record parsing and validation, engine disagreement, schema
// checks, report writing), and the ActionableError type that attaches
// an operation, a resource, and concrete suggestions to a wrapped
// cause.
package issue
