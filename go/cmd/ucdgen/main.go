package main

import (
	"os"

	"github.com/ucdkit/ucdkit/go/cmd/ucdgen/cli"
)

func main() {
	if err := cli.Main.Execute(); err != nil {
		os.Exit(1)
	}
}
