package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/spritify
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of spritify",
	Long: `Print the spritify version. Release builds carry the tag they were built
from; local builds report "dev".`,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "spritify %s\n", version)
	},
}
