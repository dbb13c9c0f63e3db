// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"userbench/internal/config"
)

// withConfigDir points the config package at a throwaway directory and
// clears the --config override for the duration of a test.
func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	config.SetConfigDirOverride(dir)
	origCfgFile := cfgFile
	cfgFile = ""
	t.Cleanup(func() {
		config.Reset()
		cfgFile = origCfgFile
	})
	return dir
}

// captureConfigCmd routes a config subcommand's output into buffers and
// gives it a context, so tests can call its RunE directly.
func captureConfigCmd(t *testing.T, c *cobra.Command) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	c.SetOut(out)
	c.SetErr(errOut)
	c.SetContext(context.Background())
	t.Cleanup(func() {
		c.SetOut(nil)
		c.SetErr(nil)
	})
	return out, errOut
}

func TestRunConfigShow_Defaults(t *testing.T) {
	// Not parallel: mutates config package globals.
	withConfigDir(t)
	out, _ := captureConfigCmd(t, configShowCmd)

	if err := runConfigShow(configShowCmd, nil); err != nil {
		t.Fatalf("runConfigShow() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Current Configuration",
		"(using defaults)",
		"iterations",
		"100000",
		"warmup",
		"seed",
		"format",
		"(standard output)",
		"color_scheme",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("runConfigShow() output missing %q\noutput:\n%s", want, got)
		}
	}
}

func TestRunConfigShow_LoadFailure(t *testing.T) {
	// Not parallel: mutates config package globals.
	dir := withConfigDir(t)
	out, errOut := captureConfigCmd(t, configShowCmd)

	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte("iterations: {{{"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runConfigShow(configShowCmd, nil); err == nil {
		t.Fatal("runConfigShow() succeeded on a broken config file")
	}
	if !strings.Contains(errOut.String(), "Failed to load configuration") {
		t.Errorf("runConfigShow() did not render the load-failure explanation:\n%s", errOut.String())
	}
	if strings.Contains(out.String(), "Current Configuration") {
		t.Errorf("runConfigShow() printed settings despite the failure:\n%s", out.String())
	}
}

func TestRunConfigInit(t *testing.T) {
	// Not parallel: mutates config package globals.
	dir := withConfigDir(t)
	out, _ := captureConfigCmd(t, configInitCmd)

	if err := runConfigInit(configInitCmd, nil); err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}
	if !strings.Contains(out.String(), "Created default configuration at") {
		t.Errorf("runConfigInit() output missing confirmation:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "config.cue")); err != nil {
		t.Errorf("config file not created: %v", err)
	}

	// A second init must leave the existing file alone.
	if err := runConfigInit(configInitCmd, nil); err != nil {
		t.Fatalf("second runConfigInit() error = %v", err)
	}
}

func TestRunConfigPath(t *testing.T) {
	// Not parallel: mutates config package globals.
	dir := withConfigDir(t)
	out, _ := captureConfigCmd(t, configPathCmd)

	if err := runConfigPath(configPathCmd, nil); err != nil {
		t.Fatalf("runConfigPath() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Config directory: "+dir) {
		t.Errorf("runConfigPath() output missing directory line:\n%s", got)
	}
	if !strings.Contains(got, "Config file: "+dir+"/config.cue") {
		t.Errorf("runConfigPath() output missing file line:\n%s", got)
	}
}

func TestRunConfigSet_RoundTrips(t *testing.T) {
	// Not parallel: mutates config package globals.
	withConfigDir(t)
	setOut, _ := captureConfigCmd(t, configSetCmd)

	if err := runConfigSet(configSetCmd, []string{"iterations", "5000"}); err != nil {
		t.Fatalf("runConfigSet() error = %v", err)
	}
	if !strings.Contains(setOut.String(), "Set iterations = 5000") {
		t.Errorf("runConfigSet() output missing confirmation:\n%s", setOut.String())
	}

	if err := runConfigSet(configSetCmd, []string{"output.format", "json"}); err != nil {
		t.Fatalf("runConfigSet(output.format) error = %v", err)
	}

	loaded, err := cfgProvider.Load(context.Background(), config.LoadOptions{})
	if err != nil {
		t.Fatalf("Load() after set error = %v", err)
	}
	if int(loaded.Iterations) != 5000 {
		t.Errorf("iterations = %d after set, want 5000", loaded.Iterations)
	}
	if loaded.Output.Format != config.OutputFormatJSON {
		t.Errorf("output.format = %q after set, want %q", loaded.Output.Format, config.OutputFormatJSON)
	}

	dumpOut, _ := captureConfigCmd(t, configDumpCmd)
	if err := runConfigDump(configDumpCmd, nil); err != nil {
		t.Fatalf("runConfigDump() error = %v", err)
	}
	got := dumpOut.String()
	if !strings.Contains(got, "iterations: 5000") || !strings.Contains(got, `format: "json"`) {
		t.Errorf("runConfigDump() does not reflect saved values:\n%s", got)
	}
}

func TestRunConfigSet_Validation(t *testing.T) {
	// Not parallel: mutates config package globals.
	withConfigDir(t)
	captureConfigCmd(t, configSetCmd)

	tests := []struct {
		name     string
		key      string
		value    string
		sentinel error
		contains string
	}{
		{name: "iterations not a number", key: "iterations", value: "abc", contains: "not an integer"},
		{name: "iterations zero", key: "iterations", value: "0", sentinel: config.ErrInvalidIterationCount},
		{name: "warmup negative", key: "warmup", value: "-1", sentinel: config.ErrInvalidWarmupCount},
		{name: "dataset count zero", key: "dataset.count", value: "0", sentinel: config.ErrInvalidDatasetCount},
		{name: "unknown format", key: "output.format", value: "xml", sentinel: config.ErrInvalidOutputFormat},
		{name: "unknown scheme", key: "output.color_scheme", value: "neon", sentinel: config.ErrInvalidColorScheme},
		{name: "unknown key", key: "output.font", value: "mono", contains: "unknown configuration key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runConfigSet(configSetCmd, []string{tt.key, tt.value})
			if err == nil {
				t.Fatalf("runConfigSet(%q, %q) succeeded, want error", tt.key, tt.value)
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("runConfigSet(%q, %q) error = %v, want %v", tt.key, tt.value, err, tt.sentinel)
			}
			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("runConfigSet(%q, %q) error = %v, want substring %q", tt.key, tt.value, err, tt.contains)
			}
		})
	}
}

func TestRunConfigCheck(t *testing.T) {
	// Not parallel: mutates config package globals.
	dir := withConfigDir(t)

	t.Run("explicit valid file", func(t *testing.T) {
		out, _ := captureConfigCmd(t, configCheckCmd)
		cfgPath := filepath.Join(t.TempDir(), "bench.cue")
		if err := os.WriteFile(cfgPath, []byte("iterations: 2500\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := runConfigCheck(configCheckCmd, []string{cfgPath}); err != nil {
			t.Fatalf("runConfigCheck() error = %v", err)
		}
		got := out.String()
		if !strings.Contains(got, cfgPath+" is valid") {
			t.Errorf("runConfigCheck() output missing confirmation:\n%s", got)
		}
		if !strings.Contains(got, "iterations: 2500") {
			t.Errorf("runConfigCheck() output missing effective settings:\n%s", got)
		}
	})

	t.Run("falls back to standard location", func(t *testing.T) {
		out, _ := captureConfigCmd(t, configCheckCmd)
		if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte("warmup: 250\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := runConfigCheck(configCheckCmd, nil); err != nil {
			t.Fatalf("runConfigCheck() error = %v", err)
		}
		got := out.String()
		if !strings.Contains(got, "is valid") {
			t.Errorf("runConfigCheck() output missing confirmation:\n%s", got)
		}
		if !strings.Contains(got, "warmup: 250") {
			t.Errorf("runConfigCheck() output missing effective settings:\n%s", got)
		}
	})

	t.Run("schema violation renders the load-failure card", func(t *testing.T) {
		_, errOut := captureConfigCmd(t, configCheckCmd)
		cfgPath := filepath.Join(t.TempDir(), "bench.cue")
		if err := os.WriteFile(cfgPath, []byte(`iterations: "lots"`), 0o644); err != nil {
			t.Fatal(err)
		}

		err := runConfigCheck(configCheckCmd, []string{cfgPath})
		if err == nil {
			t.Fatal("runConfigCheck() accepted an invalid file")
		}
		if !strings.Contains(err.Error(), "iterations") {
			t.Errorf("runConfigCheck() error does not name the field: %v", err)
		}
		if !strings.Contains(errOut.String(), "Failed to load configuration") {
			t.Errorf("runConfigCheck() did not render the load-failure explanation:\n%s", errOut.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		captureConfigCmd(t, configCheckCmd)
		err := runConfigCheck(configCheckCmd, []string{filepath.Join(t.TempDir(), "absent.cue")})
		if err == nil {
			t.Fatal("runConfigCheck() succeeded on a missing file")
		}
	})
}

func TestRunConfigSet_BoolValues(t *testing.T) {
	// Not parallel: mutates config package globals.
	withConfigDir(t)
	captureConfigCmd(t, configSetCmd)

	if err := runConfigSet(configSetCmd, []string{"output.verbose", "true"}); err != nil {
		t.Fatalf("runConfigSet(output.verbose, true) error = %v", err)
	}
	loaded, err := cfgProvider.Load(context.Background(), config.LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded.Output.Verbose {
		t.Error("output.verbose not persisted as true")
	}

	if err := runConfigSet(configSetCmd, []string{"output.verbose", "false"}); err != nil {
		t.Fatalf("runConfigSet(output.verbose, false) error = %v", err)
	}
	loaded, err = cfgProvider.Load(context.Background(), config.LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Output.Verbose {
		t.Error("output.verbose not persisted as false")
	}
}
