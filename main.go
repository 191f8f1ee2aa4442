// SPDX-License-Identifier: MPL-2.0

// scriptway is a command-dispatch framework CLI: it resolves, lists, and
// documents a project's command scripts and library modules.
package main

import cmd "scriptway-cli/cmd/scriptway"

func main() {
	cmd.Execute()
}
