package main

import (
	"os"

	"github.com/kenkundert/bw-export/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
