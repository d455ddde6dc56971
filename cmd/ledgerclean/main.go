package main

import (
	"os"

	"github.com/ledgerclean-dev/ledgerclean/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
