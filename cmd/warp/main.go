package main

import (
	"os"

	"github.com/katalvlaran/warp/internal/cli"
)

func main() {
	if !cli.NewCLI().Execute() {
		os.Exit(1)
	}
}
