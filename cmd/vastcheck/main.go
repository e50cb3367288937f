package main

import (
	"os"

	"github.com/google-marketing-solutions/vast-validator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
