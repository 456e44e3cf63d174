package main

import (
	"os"

	"anagrind/cmd/anagrind/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
