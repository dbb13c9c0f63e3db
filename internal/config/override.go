// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride, when non-empty, takes precedence over the
// platform lookup in ConfigDir. Tests point it at a temp directory
// because rewriting HOME is not enough everywhere: os.UserHomeDir
// ignores the environment on some platforms.
var configDirOverride string

// SetConfigDirOverride routes ConfigDir to dir until Reset is called.
// Test-only; production code resolves the directory per platform.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset restores the platform config directory lookup. Pair it with
// SetConfigDirOverride in test cleanup.
func Reset() {
	configDirOverride = ""
}
