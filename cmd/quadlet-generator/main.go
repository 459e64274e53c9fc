// Package main provides the CLI entrypoint for quadlet-generator.
//
// quadlet-generator turns submitted form fields into Podman Quadlet units:
//   - Reads flat key=value field entries (file or stdin)
//   - Groups them into option records
//   - Writes a Quadlet unit or the equivalent podman command line
//   - Lists and checks the option catalogues that drive the form
package main

import (
	"fmt"
	"os"
)

func main() {
	err := newRootCommand(newApp()).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
