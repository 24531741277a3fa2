package main

import (
	"os"

	"github.com/dockhand/dbup/cmd/dbup/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
