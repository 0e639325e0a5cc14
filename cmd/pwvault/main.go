package main

import (
	"os"

	"pwvault/cmd/pwvault/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
