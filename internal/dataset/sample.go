// SPDX-License-Identifier: MPL-2.0

package dataset

import "userbench/pkg/user"

// SampleJSON is the compact wire form of Sample(). The benchmark suites
// decode this fixed document so that per-iteration work is constant.
const SampleJSON = `{"id":1,"name":"Alice Johnson","email":"alice@example.com","age":30,"active":true}`

// Sample returns the fixed record every per-operation benchmark runs on.
func Sample() user.User {
	return user.New(1, "Alice Johnson", "alice@example.com", 30, true)
}

// SampleMap returns Sample() as the untyped mapping used by the construction
// benchmarks. A fresh map is returned on every call; callers may mutate it.
func SampleMap() map[string]any {
	return map[string]any{
		"id":     int64(1),
		"name":   "Alice Johnson",
		"email":  "alice@example.com",
		"age":    30,
		"active": true,
	}
}

// SamplePatch returns the override set used by the copy benchmark: a new
// name, everything else preserved.
func SamplePatch() user.Patch {
	return user.PatchName("Bob Smith")
}
