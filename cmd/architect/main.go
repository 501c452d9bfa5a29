package main

import (
	"os"

	"github.com/pranavyk10/guided-component-architect/cmd/architect/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
