// Package main provides the make10 command-line tool.
package main

import (
	"os"

	"github.com/robalobadob/make10/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
