package main

import (
	"os"

	"github.com/spigell/growth-explorer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
