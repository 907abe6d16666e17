package main

import (
	"os"

	"github.com/runnerops/mockplane/cmd/mockplane/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
