// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Scent is one named scent with its family and playback intensity.
type Scent struct {
	Name      string   `json:"name"`
	Family    string   `json:"family"`
	Intensity float64  `json:"intensity"`
	Notes     []string `json:"notes"`
}

// BlendComponent is one scent family's share of a hardware blend.
type BlendComponent struct {
	Family     string  `json:"family"`
	Channel    int     `json:"channel"`
	Percentage float64 `json:"percentage"`
	Intensity  float64 `json:"intensity"`
}

// BlendRecipe instructs a multi-channel diffuser how to mix the detected
// families.
type BlendRecipe struct {
	Components  []BlendComponent `json:"components"`
	BlendTimeMs int              `json:"blend_time_ms"`
}

// ScentFamilyInfo describes one scent family for catalog listings.
type ScentFamilyInfo struct {
	Name          string   `json:"name"`
	Channel       int      `json:"channel"`
	Keywords      []string `json:"keywords"`
	Scents        []string `json:"scents"`
	BaseIntensity float64  `json:"base_intensity"`
}

// ScentProfile is the olfactory descriptor generated for one text.
type ScentProfile struct {
	PrimaryScent     Scent    `json:"primary_scent"`
	AmbientScents    []Scent  `json:"ambient_scents"`
	BlendRecipe      BlendRecipe `json:"blend_recipe"`
	DetectedFamilies []string `json:"detected_families"`
	OverallIntensity float64  `json:"overall_intensity"`
}
