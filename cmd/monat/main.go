package main

import (
	"os"

	"github.com/Pavinberg/monat/internal/cli"
)

func main() {
	app := cli.NewApp()
	cmd := app.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(int(cli.MapExitCode(err)))
	}
}
