package main

import (
	"os"

	"github.com/gravitas-games/eisenhex/cmd/hexgrid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
