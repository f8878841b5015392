package main

import (
	"os"

	"github.com/msto63/sportspa/cmd/sportspa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
