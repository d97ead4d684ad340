// Package main is the entry point for the sitekit server CLI.
package main

import (
	"fmt"
	"os"

	"github.com/bargom/sitekit/cmd/sitekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
