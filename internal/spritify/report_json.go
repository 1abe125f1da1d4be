package spritify

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Input     string      `json:"input"`
	Output    string      `json:"output,omitempty"` // Empty when written to stdout
	Summary   JSONSummary `json:"summary"`
	Sprite    *JSONSprite `json:"sprite,omitempty"`
	Warnings  []string    `json:"warnings"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	RulesParsed         int `json:"rules_parsed"`
	PropertiesRewritten int `json:"properties_rewritten"`
	ImagesSprited       int `json:"images_sprited"`
}

// JSONSprite describes the composite image
type JSONSprite struct {
	File      string     `json:"file"`
	URL       string     `json:"url"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Padding   int        `json:"padding"`
	Slots     []JSONSlot `json:"slots"`
	Selectors []string   `json:"selectors"`
}

// JSONSlot is one image inside the composite
type JSONSlot struct {
	Index  int    `json:"index"`
	Image  string `json:"image"`
	Offset int    `json:"offset"`
}

// WriteJSON writes the run result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	output := JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Input:     result.Input,
		Output:    result.Output,
		Summary: JSONSummary{
			RulesParsed:         result.RulesParsed,
			PropertiesRewritten: result.PropertiesRewritten,
			ImagesSprited:       len(result.Layout.Images),
		},
		Warnings: warnings,
	}

	if len(result.Layout.Images) == 0 {
		return output
	}

	slots := make([]JSONSlot, len(result.Layout.Images))
	for i, img := range result.Layout.Images {
		slots[i] = JSONSlot{Index: i, Image: img, Offset: result.Layout.Offset(i)}
	}

	output.Sprite = &JSONSprite{
		File:      result.SpriteFile,
		URL:       result.SpriteURL,
		Width:     result.Layout.Width(),
		Height:    result.Layout.Height(),
		Padding:   result.Layout.Padding,
		Slots:     slots,
		Selectors: result.SpritedSelectors,
	}
	return output
}
