package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/aboutlibs/internal/cli"
	"github.com/rshade/aboutlibs/internal/library"
	"github.com/rshade/aboutlibs/pkg/version"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitInvalidData = 2
)

func run() error {
	root := cli.NewRootCmd(version.String())
	return root.Execute()
}

// exitCode maps an error to the process exit status. Descriptors that fail
// to parse exit with 2 so scripts can tell bad input from other failures.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, library.ErrParse):
		return exitInvalidData
	default:
		return exitError
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
