package main

import (
	"os"

	"github.com/subscope-dev/subscope/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
