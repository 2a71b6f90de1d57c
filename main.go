package main

import (
	"os"

	"github.com/abhisek/capitolquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
