// Package main is the entry point for omdctl.
package main

import (
	"os"

	"omd-facade/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
