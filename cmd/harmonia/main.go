// Harmonia - colour-harmony analysis for image palettes
//
// Harmonia extracts representative colours from images and scores the
// resulting palettes against classical colour-harmony schemes.
package main

import (
	"os"

	"github.com/nat-bishop/harmonia/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
