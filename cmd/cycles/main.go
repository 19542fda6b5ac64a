package main

import (
	"os"

	"github.com/katalvlaran/cycles/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
