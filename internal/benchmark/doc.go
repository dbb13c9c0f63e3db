// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides go-test benchmarks for PGO profile generation.
// These benchmarks cover the hot paths in the userbench codebase:
//   - Compact and indented JSON encoding, on both engines
//   - JSON decoding, including the rejection paths
//   - Construction from untyped mappings
//   - Field iteration, copy-with-overrides, and corpus aggregation
//
// To generate a PGO profile, run:
//
//	go test -bench=. -cpuprofile=default.pgo ./internal/benchmark
//
// The wall-clock harness behind `userbench run` measures the same
// operations with its own timer; these benchmarks exist for profiling and
// for `go test -bench` comparisons against it.
package benchmark
