// Package main provides the entry point for the company-recover CLI.
package main

import (
	"fmt"
	"os"

	"github.com/companysim/company-recover/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
