package main

import (
	"os"

	"github.com/flightfare/farecast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
