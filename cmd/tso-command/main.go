// Package main is the entry point for the tso-command CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zos-automation/tso-command/internal/app"
	"github.com/zos-automation/tso-command/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCommand(app.New, version)
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, exitErr.Err)
		}
		return exitErr.Code
	}

	fmt.Fprintln(os.Stderr, err)
	return 1
}
