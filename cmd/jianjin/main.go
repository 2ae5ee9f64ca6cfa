// Package main is the entry point for the jianjin CLI.
package main

import (
	"os"

	"github.com/f3rmion/jianjin/cmd/jianjin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
