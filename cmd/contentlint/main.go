// Package main provides the contentlint CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/contentlint/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
