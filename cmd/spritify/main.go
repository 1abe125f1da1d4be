// Package main provides the spritify CLI tool for packing stylesheet background images into a spritesheet.
package main

import (
	"fmt"
	"os"

	"github.com/yacobolo/spritify"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		useColors := spritify.ShouldUseColors(getBoolWithFallback("color", "color", false), os.Stderr)
		fmt.Fprintln(os.Stderr, spritify.FormatError(err, useColors))
		fmt.Fprintln(os.Stderr, spritify.FormatHint("Run 'spritify --help' for usage.", useColors))
		os.Exit(1)
	}
}
