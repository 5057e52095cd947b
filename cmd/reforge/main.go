package main

import (
	"os"

	"reforge/cmd/reforge/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
