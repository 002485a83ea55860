package main

import (
	"os"

	"foster-budget/cmd/cli/cmd"
	"foster-budget/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
