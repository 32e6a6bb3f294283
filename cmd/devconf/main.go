package main

import (
	"fmt"
	"os"

	"github.com/yndnr/devconf/internal/cli/command"
	"github.com/yndnr/devconf/internal/core/domain"
)

func main() {
	app := command.App(domain.VariantBasic)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(command.ExitCode(err))
	}
}
