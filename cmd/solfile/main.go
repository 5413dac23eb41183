package main

import (
	"fmt"
	"os"

	"github.com/nixpig/solfile/internal/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		os.Stderr.Write(fmt.Appendf(nil, "failed to execute: %s\n", err))
		os.Exit(1)
	}
}
