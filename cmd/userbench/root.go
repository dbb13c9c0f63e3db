// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"userbench/internal/config"
	"userbench/internal/issue"
)

// Build metadata, stamped through -ldflags at release time. The
// defaults identify a source build.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var (
	// verbose mirrors --verbose; config output.verbose can also raise it.
	verbose bool
	// cfgFile mirrors --config; empty means the standard lookup.
	cfgFile string

	// cfgProvider loads configuration for every command.
	cfgProvider = config.NewProvider()
	// cfg is the configuration loaded at startup. Commands read defaults
	// from it; flags take precedence.
	cfg = config.DefaultConfig()

	// rootCmd is what runs when the binary is invoked bare.
	rootCmd = &cobra.Command{
		Use:   "userbench",
		Short: "Micro-benchmark harness for a validated User record",
		Long: TitleStyle.Render("userbench") + SubtitleStyle.Render(" - micro-benchmark harness for a validated User record") + `

userbench implements one immutable User record twice: a hand-written
codec with explicit code on every path, and a reflection-driven codec
built on encoding/json plus tag validation. The two engines must agree
on every byte and every accept/reject decision; the benchmark measures
what the hand-written paths buy.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Measure both engines:   userbench run
  2. Export the results:     userbench run --format json --out results.json
  3. Tour the record API:    userbench demo

` + SubtitleStyle.Render("Examples:") + `
  userbench run                    Measure every operation on both engines
  userbench run marshal unmarshal  Measure selected operations only
  userbench run --engine direct    Measure a single engine
  userbench gen -n 5               Print five generated records as JSON
  userbench schema check u.json    Check files against the record schema
  userbench config show            Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/userbench/config.cue)")

	rootCmd.AddCommand(runCmd, demoCmd, genCmd, schemaCmd, configCmd)
}

// getVersionString renders the stamped build metadata for --version.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the command tree and exits the process. main.main calls
// it exactly once. fang supplies the styled help, errors and version
// output; the version goes through fang.WithVersion because fang owns
// rootCmd.Version.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.Code
			// An ExitError always means failure; a zero or out-of-range
			// code must not turn into a clean exit.
			if code.IsSuccess() || code.Validate() != nil {
				code = 1
			}
			os.Exit(int(code))
		}
		os.Exit(1)
	}
}

// initRootConfig loads the configuration before any command runs. A broken
// config file is surfaced as a warning and the defaults are used, so the
// benchmark stays runnable.
func initRootConfig() {
	loaded, err := cfgProvider.Load(context.Background(), loadOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	// An explicit --verbose wins; the config can only raise verbosity.
	if !verbose {
		verbose = cfg.Output.Verbose
	}
}

// formatErrorForDisplay prefers the ActionableError rendering, with its
// suggestions and (in verbose mode) the cause chain, over a bare
// Error() string.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
