// SPDX-License-Identifier: MPL-2.0

// clearsetup bootstraps a machine for the Clear task assistant.
package main

import cmd "clearsetup/cmd/clearsetup"

func main() {
	cmd.Execute()
}
