package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/spritify"
)

const (
	configFile = ".spritify.yaml"
	envPrefix  = "SPRITIFY_"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = configFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only explicitly set flags are
	// loaded; defaults live in buildConfig.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (SPRITIFY_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps environment variables to config keys:
//
//	SPRITIFY_SPRITE_MAX_WIDTH -> sprite.max-width
//	SPRITIFY_INPUT            -> input
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if rest, ok := strings.CutPrefix(key, "sprite_"); ok {
		return "sprite." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildConfig constructs the library's Config struct from koanf state.
// Positional arguments ([input.css] [sprites.png]) win over everything else.
func buildConfig(args []string) (spritify.Config, error) {
	config := spritify.Config{
		Input:      getStringWithFallback("input", "input", ""),
		SpritePath: getStringWithFallback("png", "png", ""),
		Output:     getStringWithFallback("output", "output", ""),
		MaxWidth:   getIntWithFallback("max-width", "sprite.max-width", spritify.DefaultMaxWidth),
		MaxHeight:  getIntWithFallback("max-height", "sprite.max-height", spritify.DefaultMaxHeight),
		Padding:    getIntWithFallback("padding", "sprite.padding", spritify.DefaultPadding),
		Banner:     getBoolWithFallback("banner", "sprite.banner", true),
	}

	if len(args) > 0 {
		config.Input = args[0]
	}
	if len(args) > 1 {
		config.SpritePath = args[1]
	}

	if k.Exists("no-banner") {
		config.Banner = !k.Bool("no-banner")
	}

	if size := getStringWithFallback("max-size", "sprite.max-size", ""); size != "" {
		w, h, err := spritify.ParseMaxSize(size)
		if err != nil {
			return spritify.Config{}, err
		}
		config.MaxWidth, config.MaxHeight = w, h
	}

	buster, err := spritify.BusterFor(getStringWithFallback("cache-buster", "sprite.cache-buster", "hash"))
	if err != nil {
		return spritify.Config{}, err
	}
	config.CacheBuster = buster

	// Handle excludes: check flag key first, then config key
	if exclude := k.Strings("exclude"); len(exclude) > 0 {
		config.Exclude = exclude
	} else if exclude := k.Strings("sprite.exclude"); len(exclude) > 0 {
		config.Exclude = exclude
	}

	if config.Input == "" || config.SpritePath == "" {
		return spritify.Config{}, fmt.Errorf("%w: an input stylesheet and a sprite PNG are required", spritify.ErrInvalidConfig)
	}

	return config, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
