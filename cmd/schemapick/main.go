package main

import (
	"os"

	"github.com/lcollet/schemapick/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
