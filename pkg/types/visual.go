// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DetectedElement is one visual element category found in the text, with
// the keywords that matched it.
type DetectedElement struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
	Count    int      `json:"count"`
}

// StylePreset describes one rendering style from the fixed style catalog.
type StylePreset struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
}

// VisualConcepts is the visual-concept descriptor generated for one text.
type VisualConcepts struct {
	SceneDescription      string            `json:"scene_description"`
	Elements              []DetectedElement `json:"elements"`
	Mood                  string            `json:"mood"`
	Lighting              string            `json:"lighting"`
	ColorPalette          []string          `json:"color_palette"`
	Style                 StylePreset       `json:"style"`
	CompositionSuggestion []string          `json:"composition_suggestion"`
}
