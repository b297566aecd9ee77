// radix reads a number in any base from 2 to 36 and prints it in
// binary, octal, decimal and hexadecimal.
// Runs in a terminal or as an Alfred Script Filter (--format alfred).
package main

import (
	"os"

	"github.com/corey/radix/cmd/radix/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
