package main

import (
	"os"

	"github.com/brickroad/brickroad/cmd/brickroad/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
