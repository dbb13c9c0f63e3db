// SPDX-License-Identifier: MPL-2.0

// Package cmd is the Cobra command tree behind the userbench binary:
// the benchmark runner, the demo walkthrough, sample-data generation,
// schema inspection, and configuration management, all executed
// through fang for consistent styling and exit handling.
package cmd
