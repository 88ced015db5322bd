package main

import (
	"os"

	"github.com/roksva123/go-clickup/cmd/clickup/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
