// SPDX-License-Identifier: MPL-2.0

// Command userbench measures hand-written versus reflection-driven
// handling of a small validated record.
package main

import (
	cmd "userbench/cmd/userbench"
)

func main() {
	cmd.Execute()
}
