// Package main is the entry point for the streak CLI.
package main

import (
	"fmt"
	"os"

	"github.com/MikeBiancalana/streak/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	cli.Version = version
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
