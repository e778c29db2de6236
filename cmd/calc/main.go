package main

import (
	"os"

	"github.com/opencalc/calc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
