// Package main is the entry point for the pickaboo CLI.
package main

import (
	"os"

	"github.com/runger/pickaboo/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
