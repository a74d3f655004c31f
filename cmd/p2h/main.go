package main

import (
	"os"

	"github.com/pixel2html/p2h/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
