// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"userbench/internal/issue"
	"userbench/pkg/cueutil"
	"userbench/pkg/types"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "userbench"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the userbench configuration directory:
// %APPDATA%\userbench on Windows, ~/Library/Application Support/userbench
// on macOS, and $XDG_CONFIG_HOME/userbench (default ~/.config/userbench)
// everywhere else.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	base, err := platformConfigBase()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// platformConfigBase resolves the OS-conventional parent of the app
// config directory.
func platformConfigBase() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".config"), nil
	}
}

// setDefaults seeds viper with DefaultConfig so file values merge over
// a complete baseline and a missing file still yields a usable Config.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("iterations", int(defaults.Iterations))
	v.SetDefault("warmup", int(defaults.Warmup))
	v.SetDefault("dataset.count", int(defaults.Dataset.Count))
	v.SetDefault("dataset.seed", defaults.Dataset.Seed)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.path", defaults.Output.Path)
	v.SetDefault("output.color_scheme", defaults.Output.ColorScheme)
	v.SetDefault("output.verbose", defaults.Output.Verbose)
}

// resolveConfigFile picks the file to load: the explicit --config path
// when given (no fallback), otherwise <config dir>/config.cue, then
// ./config.cue. found is false when no file exists, which is not an
// error; the defaults carry the run.
func resolveConfigFile(opts LoadOptions) (path string, found bool, err error) {
	if opts.ConfigFilePath != "" {
		p := opts.ConfigFilePath.String()
		if !fileExists(p) {
			return "", false, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(p).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithSuggestion("Use 'userbench config show' to see default configuration").
				Wrap(fmt.Errorf("config file not found: %s", p)).
				BuildError()
		}
		return p, true, nil
	}

	cfgDir, err := configDirWithOverride(opts.ConfigDirPath.String())
	if err != nil {
		return "", false, err
	}

	p := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(p) {
		return p, true, nil
	}
	if local := ConfigFileName + "." + ConfigFileExt; fileExists(local) {
		return local, true, nil
	}
	return "", false, nil
}

// cueLoadError wraps a schema or syntax failure from path with the
// remediation hints the CLI prints under the message.
func cueLoadError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		WithSuggestion("See 'userbench config --help' for configuration options").
		Wrap(err).
		BuildError()
}

// loadWithOptions performs option-driven config loading without mutating
// package-level cache state. Callers that want caching can wrap this function.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	setDefaults(v)

	resolvedPath, found, err := resolveConfigFile(opts)
	if err != nil {
		return nil, "", err
	}
	if found {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", cueLoadError(resolvedPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// The CUE schema only constrains fields the file actually sets; this
	// pass validates the merged result.
	if valid, fieldErrs := cfg.IsValid(); !valid {
		ec := issue.NewErrorContext().
			WithOperation("validate configuration").
			WithSuggestion("Run 'userbench config show' to inspect the effective configuration").
			WithSuggestion("Run 'userbench config dump' to see a valid configuration file")
		if resolvedPath != "" {
			ec = ec.WithResource(resolvedPath)
		}
		return nil, "", ec.Wrap(errors.Join(fieldErrs...)).BuildError()
	}

	return &cfg, resolvedPath, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper. Fields are decoded to a plain map with
// Concrete(false) so a file that sets only some of the optional fields still
// merges cleanly over the defaults.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	res, err := cueutil.ParseAndDecode[map[string]any](configSchema, data, "#Config",
		cueutil.WithFilename(path),
		cueutil.WithConcrete(false),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(*res.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// Check validates the configuration file at path and returns the effective
// configuration it would produce when merged over the defaults.
func Check(ctx context.Context, path string) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, LoadOptions{ConfigFilePath: types.FilesystemPath(path)})
	return cfg, err
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(cfgDir, 0o755)
}

// configFilePath resolves the standard config file location, creating
// the directory when missing.
func configFilePath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// CreateDefaultConfig writes a default config file unless one already exists.
func CreateDefaultConfig() error {
	cfgPath, err := configFilePath()
	if err != nil {
		return err
	}
	if fileExists(cfgPath) {
		return nil
	}
	return writeCUEFile(cfgPath, DefaultConfig())
}

// Save writes cfg to the standard config file location.
func Save(cfg *Config) error {
	cfgPath, err := configFilePath()
	if err != nil {
		return err
	}
	return writeCUEFile(cfgPath, cfg)
}

func writeCUEFile(path string, cfg *Config) error {
	if err := os.WriteFile(path, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateCUE renders cfg in the same shape `config init` writes. An
// empty report path is omitted rather than serialized, since the schema
// rejects empty strings.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// userbench configuration file.\n")
	sb.WriteString("// Run 'userbench config dump' to regenerate this file from defaults.\n\n")

	fmt.Fprintf(&sb, "iterations: %d\n", cfg.Iterations)
	fmt.Fprintf(&sb, "warmup: %d\n", cfg.Warmup)

	fmt.Fprintf(&sb, "\ndataset: {\n\tcount: %d\n\tseed: %d\n}\n", cfg.Dataset.Count, cfg.Dataset.Seed)

	sb.WriteString("\noutput: {\n")
	fmt.Fprintf(&sb, "\tformat: %q\n", cfg.Output.Format)
	if cfg.Output.Path != "" {
		fmt.Fprintf(&sb, "\tpath: %q\n", cfg.Output.Path)
	}
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.Output.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.Output.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}
