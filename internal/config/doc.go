// SPDX-License-Identifier: MPL-2.0

// Package config loads benchmark settings from a CUE file through Viper.
//
// The file lives at ~/.config/userbench/config.cue on Linux (or the XDG
// equivalent), ~/Library/Application Support/userbench/config.cue on
// macOS, and %APPDATA%\userbench\config.cue on Windows. It carries the
// iteration and warmup counts, the dataset size and seed, and the
// report output settings; flags override file values, and a missing
// file falls back to defaults.
//
// Every load is checked against the embedded schema in
// config_schema.cue first, so a typo in the file surfaces as a field
// path and message instead of a zero value deep in a run.
package config
