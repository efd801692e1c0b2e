package main

import (
	"os"

	"github.com/energynft/nftdeploy/internal/cli"
	"github.com/energynft/nftdeploy/internal/domain"
)

func main() {
	os.Exit(cli.Main(domain.ScriptMultiTransfer))
}
