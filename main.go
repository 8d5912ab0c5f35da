// SPDX-License-Identifier: MPL-2.0

// slndigest consolidates a .NET solution into a single Markdown digest.
package main

import cmd "slndigest/cmd/slndigest"

func main() {
	cmd.Execute()
}
