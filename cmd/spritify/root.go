package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/spritify"
)

var rootCmd = &cobra.Command{
	Use:   "spritify [input.css] [sprites.png]",
	Short: "Pack small stylesheet background images into one spritesheet",
	Long: `Searches a stylesheet for small PNG background images, places them into
one vertical spritesheet and writes a stylesheet that uses it in place.

The sprite PNG path is relative to the input stylesheet, as is --output.
Without --output the rewritten stylesheet is written to stdout.

A rule opts out of spriting with:  x-background-sprite: false;`,
	Example: `  spritify web/css/site.css ../img/sprites.png > site.sprited.css
  spritify --input web/css/site.css --png ../img/sprites.png --output site.sprited.css
  spritify --max-size "24px 24px" --padding 100 --report json site.css sprites.png`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runSpritify(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", configFile, "Config file path")

	f := rootCmd.Flags()
	f.String("input", "", "Input CSS file to read")
	f.String("png", "", "Sprite PNG to write, relative to the input CSS")
	f.String("output", "", "Output CSS file, relative to the input CSS (default: stdout)")
	f.Int("max-width", spritify.DefaultMaxWidth, "Maximum width of a PNG to consider as sprite")
	f.Int("max-height", spritify.DefaultMaxHeight, "Maximum height of a PNG to consider as sprite")
	f.String("max-size", "", `Maximum sprite size as "<width>[px] <height>[px]", overrides --max-width/--max-height`)
	f.Int("padding", spritify.DefaultPadding, "Vertical padding between sprites")
	f.String("cache-buster", "hash", "Sprite URL suffix: hash|random|none")
	f.StringSlice("exclude", nil, "Glob patterns of image URLs never to sprite")
	f.String("report", "summary", "Report format: summary|json|none")
	f.Bool("no-banner", false, "Do not start the stylesheet with a generated-by comment")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func runSpritify(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()
	quiet := getBoolWithFallback("quiet", "quiet", false)
	logger := newLogger(stderr, logLevel(getBoolWithFallback("verbose", "verbose", false), quiet))

	config, err := buildConfig(args)
	if err != nil {
		return err
	}
	config.Stdout = cmd.OutOrStdout()
	config.Logger = logger

	logger.Debug("Starting", "input", config.Input, "png", config.SpritePath,
		"max-width", config.MaxWidth, "max-height", config.MaxHeight, "padding", config.Padding)

	result, err := spritify.Run(config)
	if err != nil {
		return err
	}

	format := spritify.DetermineReportFormat(getStringWithFallback("report", "sprite.report", "summary"), quiet)
	useColors := spritify.ShouldUseColors(getBoolWithFallback("color", "color", false), stderr)
	return spritify.WriteReport(stderr, result, format, useColors)
}
