package main

import (
	"os"

	"github.com/energynft/nftdeploy/internal/cli"
)

func main() {
	os.Exit(cli.MainAll())
}
