package spritify

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/yacobolo/spritify/internal/css"
)

// Run is the main entry point: it rewrites config.Input to use a spritesheet
// and writes both artifacts. Nothing is written unless every stage succeeds.
func Run(config Config) (*Result, error) {
	config = config.withDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}
	logger := config.Logger

	result := &Result{Input: config.Input}
	baseDir := filepath.Dir(config.Input)

	// 1. Read and parse the stylesheet
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(config.Input)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}

	stripped, err := css.StripComments(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	sheet, err := css.Parse(stripped)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	result.RulesParsed = len(sheet.Rules())
	logger.Debug("Parsed stylesheet", "file", config.Input, "blocks", len(sheet.Blocks), "rules", result.RulesParsed)

	// 2. Pack eligible backgrounds
	exclude, err := NewExcluder(config.Exclude, filepath.Join(baseDir, IgnoreFile))
	if err != nil {
		return nil, err
	}
	packed, err := Pack(sheet, PackOptions{
		PackConfig: PackConfig{
			MaxWidth:  config.MaxWidth,
			MaxHeight: config.MaxHeight,
			Padding:   config.Padding,
		},
		BaseDir: baseDir,
		Images:  newCachedInspector(config.Images),
		Exclude: exclude,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("pack failed: %w", err)
	}
	result.Layout = packed.Layout
	result.SpritedSelectors = packed.SpritedSelectors
	result.PropertiesRewritten = packed.PropertiesRewritten
	result.Warnings = packed.Warnings

	// 3. Compose the spritesheet in memory
	var composite []byte
	if len(packed.Layout.Images) > 0 {
		var buf bytes.Buffer
		if err := Compose(&buf, packed.Layout, baseDir); err != nil {
			return nil, fmt.Errorf("compose failed: %w", err)
		}
		composite = buf.Bytes()
		logger.Debug("Composed spritesheet", "images", len(packed.Layout.Images), "size", packed.Layout.Size())
	}

	// 4. Synthesize and serialize the stylesheet
	if len(packed.SpritedSelectors) > 0 {
		result.SpriteURL = filepath.ToSlash(config.SpritePath) + config.CacheBuster(composite)
	}
	Synthesize(sheet, packed.SpritedSelectors, result.SpriteURL)

	var out bytes.Buffer
	if err := WriteStylesheet(&out, sheet, config.Banner); err != nil {
		return nil, fmt.Errorf("serialize failed: %w", err)
	}

	// 5. Write artifacts
	if composite != nil {
		result.SpriteFile = resolveImage(baseDir, config.SpritePath)
		if err := writeFile(result.SpriteFile, composite); err != nil {
			return nil, err
		}
	}

	if config.Output == "" {
		if _, err := config.Stdout.Write(out.Bytes()); err != nil {
			return nil, fmt.Errorf("write stylesheet: %w", err)
		}
	} else {
		result.Output = resolveOutput(baseDir, config.Output)
		if err := writeFile(result.Output, out.Bytes()); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (c Config) withDefaults() Config {
	if c.CacheBuster == nil {
		c.CacheBuster = HashBuster
	}
	if c.Images == nil {
		c.Images = FileInspector{}
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c
}

func (c Config) validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: no input stylesheet", ErrInvalidConfig)
	case c.SpritePath == "":
		return fmt.Errorf("%w: no sprite image path", ErrInvalidConfig)
	case c.MaxWidth <= 0 || c.MaxHeight <= 0:
		return fmt.Errorf("%w: maximum sprite size must be positive, got %dx%d",
			ErrInvalidConfig, c.MaxWidth, c.MaxHeight)
	case c.Padding < 0:
		return fmt.Errorf("%w: padding must not be negative, got %d", ErrInvalidConfig, c.Padding)
	}
	return nil
}

// resolveOutput places relative output paths next to the input stylesheet
func resolveOutput(baseDir, output string) string {
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(baseDir, output)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
