// Package main is the entry point for the vpy CLI binary.
package main

import (
	"os"

	cli "github.com/afard/VerticaPy/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
