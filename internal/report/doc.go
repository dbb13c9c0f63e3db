// SPDX-License-Identifier: MPL-2.0

// Package report presents benchmark results. It renders a fixed-width
// terminal table and a markdown document (displayed through glamour), and
// exports the full run as JSON or TOML: run identity, environment,
// parameters and per-operation measurements.
package report
