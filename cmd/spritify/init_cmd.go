package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default " + configFile + " config file",
	Long:  `Create a ` + configFile + ` configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(configFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configFile)
		}

		if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created "+configFile)
		return nil
	},
}

const defaultConfig = `# spritify configuration
# Docs: https://github.com/yacobolo/spritify

# Files (paths below input are relative to the input stylesheet)
input: web/css/site.css
png: ../img/sprites.png
# output: site.sprited.css # omit to write to stdout

verbose: false
quiet: false
color: false

# Spritesheet settings
sprite:
  max-width: 32
  max-height: 32
  # max-size: "24px 24px"  # overrides max-width / max-height
  padding: 200
  cache-buster: hash       # hash | random | none
  report: summary          # summary | json | none
  banner: true
  exclude: []              # e.g. "icons/large/**"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
