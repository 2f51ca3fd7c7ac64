// Package main - Entry point for the checkout CLI
package main

import (
	"os"

	"checkout/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
