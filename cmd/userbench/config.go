// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"userbench/internal/config"
	"userbench/internal/issue"
	"userbench/pkg/types"
)

var (
	// configCmd is the `userbench config` command tree.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage userbench configuration",
		Long: `Manage userbench configuration.

Configuration is stored in:
  - Linux: ~/.config/userbench/config.cue
  - macOS: ~/Library/Application Support/userbench/config.cue
  - Windows: %APPDATA%\userbench\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE:  runConfigPath,
	}

	configSetCmd = &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE:  runConfigSet,
	}

	configDumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		Args:  cobra.NoArgs,
		RunE:  runConfigDump,
	}

	configCheckCmd = &cobra.Command{
		Use:   "check [file]",
		Short: "Check a configuration file against the schema",
		Long: `Check a configuration file against the #Config schema.

Without arguments, checks the file given via --config, falling back to the
configuration file at the standard location. With a path argument, checks
that file.

The file goes through the same validation 'userbench run' applies when
loading it: CUE schema validation first, then the merged result is checked
field by field.

Examples:
  userbench config check               Check the active configuration file
  userbench config check ./bench.cue   Check a specific file`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConfigCheck,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd, configInitCmd, configPathCmd, configSetCmd, configDumpCmd, configCheckCmd)
}

// loadOptions builds the provider options, honoring the global --config flag.
func loadOptions() config.LoadOptions {
	opts := config.LoadOptions{}
	if cfgFile != "" {
		opts.ConfigFilePath = types.FilesystemPath(cfgFile)
	}
	return opts
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	loaded, err := cfgProvider.Load(cmd.Context(), loadOptions())
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render(glamourScheme())
		fmt.Fprint(cmd.ErrOrStderr(), rendered)
		return err
	}

	// Style definitions using shared color palette
	headerStyle := TitleStyle
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(stdout, headerStyle.Render("Current Configuration"))
	fmt.Fprintln(stdout)

	// Derive the config file path from the standard config directory; the
	// provider does not cache resolved paths.
	if cfgFile != "" {
		fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("Config file"), cfgFile)
	} else if cfgDir, dirErr := config.ConfigDir(); dirErr == nil && fileExistsCheck(cfgDir+"/config.cue") {
		fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("Config file"), cfgDir+"/config.cue")
	} else {
		fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(stdout)

	fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("iterations"), valueStyle.Render(loaded.Iterations.String()))
	fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("warmup"), valueStyle.Render(loaded.Warmup.String()))

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s:\n", keyStyle.Render("dataset"))
	fmt.Fprintf(stdout, "  count: %s\n", valueStyle.Render(loaded.Dataset.Count.String()))
	fmt.Fprintf(stdout, "  seed: %s\n", valueStyle.Render(strconv.FormatInt(loaded.Dataset.Seed, 10)))

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s:\n", keyStyle.Render("output"))
	fmt.Fprintf(stdout, "  format: %s\n", valueStyle.Render(loaded.Output.Format.String()))
	if loaded.Output.Path == "" {
		fmt.Fprintf(stdout, "  path: %s\n", SubtitleStyle.Render("(standard output)"))
	} else {
		fmt.Fprintf(stdout, "  path: %s\n", valueStyle.Render(loaded.Output.Path.String()))
	}
	fmt.Fprintf(stdout, "  color_scheme: %s\n", valueStyle.Render(loaded.Output.ColorScheme.String()))
	fmt.Fprintf(stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", loaded.Output.Verbose)))

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	if err = config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Fprintf(stdout, "%s Created default configuration at %s/config.cue\n", successIcon, cfgDir)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(stdout, "Config file: %s/config.cue\n", cfgDir)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	key, value := args[0], args[1]

	loaded, err := cfgProvider.Load(cmd.Context(), loadOptions())
	if err != nil {
		return err
	}

	switch key {
	case "iterations":
		n, perr := strconv.Atoi(value)
		if perr != nil {
			return fmt.Errorf("invalid iterations: %q is not an integer", value)
		}
		iters := config.IterationCount(n)
		if valid, errs := iters.IsValid(); !valid {
			return errors.Join(errs...)
		}
		loaded.Iterations = iters

	case "warmup":
		n, perr := strconv.Atoi(value)
		if perr != nil {
			return fmt.Errorf("invalid warmup: %q is not an integer", value)
		}
		warmup := config.WarmupCount(n)
		if valid, errs := warmup.IsValid(); !valid {
			return errors.Join(errs...)
		}
		loaded.Warmup = warmup

	case "dataset.count":
		n, perr := strconv.Atoi(value)
		if perr != nil {
			return fmt.Errorf("invalid dataset.count: %q is not an integer", value)
		}
		count := config.DatasetCount(n)
		if valid, errs := count.IsValid(); !valid {
			return errors.Join(errs...)
		}
		loaded.Dataset.Count = count

	case "dataset.seed":
		n, perr := strconv.ParseInt(value, 10, 64)
		if perr != nil {
			return fmt.Errorf("invalid dataset.seed: %q is not an integer", value)
		}
		loaded.Dataset.Seed = n

	case "output.format":
		format := config.OutputFormat(value)
		if valid, errs := format.IsValid(); !valid {
			return errors.Join(errs...)
		}
		loaded.Output.Format = format

	case "output.path":
		path := config.ReportPath(value)
		if valid, errs := path.IsValid(); !valid {
			return errors.Join(errs...)
		}
		loaded.Output.Path = path

	case "output.color_scheme":
		scheme := config.ColorScheme(value)
		if valid, errs := scheme.IsValid(); !valid {
			return errors.Join(errs...)
		}
		loaded.Output.ColorScheme = scheme

	case "output.verbose":
		loaded.Output.Verbose = value == "true" || value == "1"

	default:
		return fmt.Errorf("unknown configuration key: %s\nValid keys: iterations, warmup, dataset.count, dataset.seed, output.format, output.path, output.color_scheme, output.verbose", key)
	}

	if err := config.Save(loaded); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(stdout, "%s Set %s = %s\n", successIcon, key, value)
	return nil
}

func runConfigDump(cmd *cobra.Command, args []string) error {
	loaded, err := cfgProvider.Load(cmd.Context(), loadOptions())
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(loaded))
	return nil
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	var path string
	switch {
	case len(args) == 1:
		path = args[0]
	case cfgFile != "":
		path = cfgFile
	default:
		cfgDir, err := config.ConfigDir()
		if err != nil {
			return err
		}
		path = cfgDir + "/config.cue"
	}

	loaded, err := config.Check(cmd.Context(), path)
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render(glamourScheme())
		fmt.Fprint(cmd.ErrOrStderr(), rendered)
		return err
	}

	fmt.Fprintf(stdout, "%s %s is valid\n", successIcon, path)
	fmt.Fprintf(stdout, "  %s iterations: %s, warmup: %s, dataset.count: %s, output.format: %s\n",
		infoIcon, loaded.Iterations, loaded.Warmup, loaded.Dataset.Count, loaded.Output.Format)
	return nil
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
