package main

import (
	"os"

	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
