// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// OutputFormatTable renders results as an aligned plain-text table.
	OutputFormatTable OutputFormat = "table"
	// OutputFormatJSON renders results as a JSON report document.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatMarkdown renders results as a Markdown report.
	OutputFormatMarkdown OutputFormat = "markdown"
	// OutputFormatTOML renders results as a TOML report document.
	OutputFormatTOML OutputFormat = "toml"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidIterationCount is returned when an IterationCount value is not positive.
	ErrInvalidIterationCount = errors.New("invalid iteration count")
	// ErrInvalidWarmupCount is returned when a WarmupCount value is negative.
	ErrInvalidWarmupCount = errors.New("invalid warmup count")
	// ErrInvalidDatasetCount is returned when a DatasetCount value is not positive.
	ErrInvalidDatasetCount = errors.New("invalid dataset count")
	// ErrInvalidReportPath is returned when a ReportPath value is whitespace-only.
	ErrInvalidReportPath = errors.New("invalid report path")
	// ErrInvalidDatasetConfig is the sentinel error wrapped by InvalidDatasetConfigError.
	ErrInvalidDatasetConfig = errors.New("invalid dataset config")
	// ErrInvalidOutputConfig is the sentinel error wrapped by InvalidOutputConfigError.
	ErrInvalidOutputConfig = errors.New("invalid output config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// OutputFormat specifies how benchmark results are rendered.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	// It wraps ErrInvalidOutputFormat for errors.Is() compatibility.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// IterationCount is the number of timed iterations per benchmark operation.
	// Defined locally to avoid coupling config to internal/bench;
	// the run command casts to bench.Iterations at the boundary.
	IterationCount int

	// InvalidIterationCountError is returned when an IterationCount value is not positive.
	// It wraps ErrInvalidIterationCount for errors.Is() compatibility.
	InvalidIterationCountError struct {
		Value IterationCount
	}

	// WarmupCount is the number of untimed warmup calls before measurement.
	// Defined locally to avoid coupling config to internal/bench;
	// the run command casts to bench.Warmup at the boundary.
	WarmupCount int

	// InvalidWarmupCountError is returned when a WarmupCount value is negative.
	// It wraps ErrInvalidWarmupCount for errors.Is() compatibility.
	InvalidWarmupCountError struct {
		Value WarmupCount
	}

	// DatasetCount is the number of synthetic records to generate.
	DatasetCount int

	// InvalidDatasetCountError is returned when a DatasetCount value is not positive.
	// It wraps ErrInvalidDatasetCount for errors.Is() compatibility.
	InvalidDatasetCountError struct {
		Value DatasetCount
	}

	// ReportPath represents a filesystem path for the exported report.
	// The zero value ("") is valid and means "write to standard output".
	// Non-zero values must not be whitespace-only.
	ReportPath string

	// InvalidReportPathError is returned when a ReportPath value is
	// non-empty but whitespace-only.
	InvalidReportPathError struct {
		Value ReportPath
	}

	// InvalidDatasetConfigError is returned when a DatasetConfig has invalid fields.
	// It wraps ErrInvalidDatasetConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidDatasetConfigError struct {
		FieldErrors []error
	}

	// InvalidOutputConfigError is returned when an OutputConfig has invalid fields.
	// It wraps ErrInvalidOutputConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidOutputConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Iterations is the number of timed iterations per benchmark operation
		Iterations IterationCount `json:"iterations" mapstructure:"iterations"`
		// Warmup is the number of untimed warmup calls before measurement
		Warmup WarmupCount `json:"warmup" mapstructure:"warmup"`
		// Dataset configures the synthetic record generator
		Dataset DatasetConfig `json:"dataset" mapstructure:"dataset"`
		// Output configures how results are rendered
		Output OutputConfig `json:"output" mapstructure:"output"`
	}

	// DatasetConfig configures the synthetic record generator.
	DatasetConfig struct {
		// Count is the number of records to generate
		Count DatasetCount `json:"count" mapstructure:"count"`
		// Seed is the deterministic generator seed; any value is valid
		Seed int64 `json:"seed" mapstructure:"seed"`
	}

	// OutputConfig configures how benchmark results are rendered.
	OutputConfig struct {
		// Format selects the report renderer
		Format OutputFormat `json:"format" mapstructure:"format"`
		// Path is where the report is written; empty means standard output
		Path ReportPath `json:"path" mapstructure:"path"`
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables per-operation diagnostic logging
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// IsValid returns whether the DatasetConfig has valid fields.
// It delegates to Count.IsValid(); Seed accepts any value.
func (c DatasetConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Count.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidDatasetConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidDatasetConfigError.
func (e *InvalidDatasetConfigError) Error() string {
	return fmt.Sprintf("invalid dataset config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidDatasetConfig for errors.Is() compatibility.
func (e *InvalidDatasetConfigError) Unwrap() error { return ErrInvalidDatasetConfig }

// IsValid returns whether the OutputConfig has valid fields.
// It delegates to Format.IsValid(), Path.IsValid(), and ColorScheme.IsValid();
// bool fields need no validation.
func (c OutputConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Path.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidOutputConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidOutputConfigError.
func (e *InvalidOutputConfigError) Error() string {
	return fmt.Sprintf("invalid output config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidOutputConfig for errors.Is() compatibility.
func (e *InvalidOutputConfigError) Unwrap() error { return ErrInvalidOutputConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to Iterations.IsValid(), Warmup.IsValid(), Dataset.IsValid(),
// and Output.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Iterations.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Warmup.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Dataset.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Output.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Error implements the error interface for InvalidOutputFormatError.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: table, json, markdown, toml)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error {
	return ErrInvalidOutputFormat
}

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats,
// and a list of validation errors if it is not.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatMarkdown, OutputFormatTOML:
		return true, nil
	default:
		return false, []error{&InvalidOutputFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidIterationCountError.
func (e *InvalidIterationCountError) Error() string {
	return fmt.Sprintf("invalid iteration count %d: must be positive", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidIterationCountError) Unwrap() error {
	return ErrInvalidIterationCount
}

// String returns the string representation of the IterationCount.
func (n IterationCount) String() string { return fmt.Sprintf("%d", int(n)) }

// IsValid returns whether the IterationCount is positive,
// and a list of validation errors if it is not.
func (n IterationCount) IsValid() (bool, []error) {
	if n <= 0 {
		return false, []error{&InvalidIterationCountError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidWarmupCountError.
func (e *InvalidWarmupCountError) Error() string {
	return fmt.Sprintf("invalid warmup count %d: must not be negative", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidWarmupCountError) Unwrap() error {
	return ErrInvalidWarmupCount
}

// String returns the string representation of the WarmupCount.
func (n WarmupCount) String() string { return fmt.Sprintf("%d", int(n)) }

// IsValid returns whether the WarmupCount is non-negative,
// and a list of validation errors if it is not.
func (n WarmupCount) IsValid() (bool, []error) {
	if n < 0 {
		return false, []error{&InvalidWarmupCountError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidDatasetCountError.
func (e *InvalidDatasetCountError) Error() string {
	return fmt.Sprintf("invalid dataset count %d: must be positive", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidDatasetCountError) Unwrap() error {
	return ErrInvalidDatasetCount
}

// String returns the string representation of the DatasetCount.
func (n DatasetCount) String() string { return fmt.Sprintf("%d", int(n)) }

// IsValid returns whether the DatasetCount is positive,
// and a list of validation errors if it is not.
func (n DatasetCount) IsValid() (bool, []error) {
	if n <= 0 {
		return false, []error{&InvalidDatasetCountError{Value: n}}
	}
	return true, nil
}

// String returns the string representation of the ReportPath.
func (p ReportPath) String() string { return string(p) }

// IsValid returns whether the ReportPath is valid.
// The zero value ("") is valid (means "write to standard output").
// Non-zero values must not be whitespace-only.
func (p ReportPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidReportPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidReportPathError.
func (e *InvalidReportPathError) Error() string {
	return fmt.Sprintf("invalid report path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidReportPath for errors.Is() compatibility.
func (e *InvalidReportPathError) Unwrap() error { return ErrInvalidReportPath }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Iterations: 100000,
		Warmup:     1000,
		Dataset: DatasetConfig{
			Count: 100000,
			Seed:  42,
		},
		Output: OutputConfig{
			Format:      OutputFormatTable,
			Path:        "", // Will write to stdout if empty
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
