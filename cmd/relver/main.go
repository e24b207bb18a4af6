package main

import (
	"context"
	"os"

	"github.com/calebzulawski/relver/internal/cli"
	"github.com/calebzulawski/relver/internal/config"
	"github.com/calebzulawski/relver/internal/printer"
)

// runCLI loads the configuration and runs the root command with the given
// arguments. Split out of main for testability.
func runCLI(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	return cli.New(cfg).Run(context.Background(), args)
}

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}
