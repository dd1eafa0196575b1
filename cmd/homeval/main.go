package main

import (
	"os"

	"github.com/homeval/homeval/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
