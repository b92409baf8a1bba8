package main

import (
	"os"

	"github.com/bogie-dev/bogie/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
