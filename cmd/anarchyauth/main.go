package main

import (
	"os"

	"anarchyauth/cmd/anarchyauth/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
