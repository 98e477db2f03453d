// Command platform-detect classifies the execution environment and
// reports which browser-automation backend and dependency manifest to use.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitOK      = 0
	exitUnknown = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	// cobra falls back to os.Args on a nil slice.
	cmd.SetArgs(append([]string{}, args...))
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errUnknownPlatform) {
			return exitUnknown
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	return exitOK
}
