// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package visual maps narrative text to visual concept descriptors:
// detected elements, mood, lighting, palette, and composition hints.
package visual

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/immersion-engine/pkg/types"
)

// Mapper generates visual concept descriptors from text. It holds only
// compiled keyword patterns and is safe for concurrent use.
type Mapper struct {
	cfg             types.VisualConfig
	elementPatterns map[string]*regexp.Regexp
	moodPatterns    map[string]*regexp.Regexp
}

// NewMapper compiles the element and mood vocabularies.
func NewMapper(cfg types.VisualConfig) *Mapper {
	if cfg.DefaultStyle == "" {
		cfg.DefaultStyle = "realistic"
	}
	if cfg.MaxConcepts <= 0 {
		cfg.MaxConcepts = 5
	}
	m := &Mapper{
		cfg:             cfg,
		elementPatterns: make(map[string]*regexp.Regexp, len(visualElements)),
		moodPatterns:    make(map[string]*regexp.Regexp, len(moods)),
	}
	for name, cat := range visualElements {
		m.elementPatterns[name] = wordPattern(cat.keywords)
	}
	for name, mood := range moods {
		m.moodPatterns[name] = wordPattern(mood.keywords)
	}
	return m
}

func wordPattern(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

// Styles lists the style presets in their fixed order.
func Styles() []types.StylePreset {
	out := make([]types.StylePreset, 0, len(styleOrder))
	for _, name := range styleOrder {
		s := styles[name]
		out = append(out, types.StylePreset{
			Name:            name,
			Description:     s.description,
			Characteristics: s.characteristics,
		})
	}
	return out
}

// Generate builds the visual descriptor for text. An unknown style falls
// back to the configured default; empty text is an invalid input.
func (m *Mapper) Generate(text, style string) (types.VisualConcepts, error) {
	if strings.TrimSpace(text) == "" {
		return types.VisualConcepts{}, fmt.Errorf("%w: text must not be empty", types.ErrInvalidInput)
	}
	if _, ok := styles[style]; !ok {
		style = m.cfg.DefaultStyle
	}

	elements := m.extractElements(text)
	mood := m.determineMood(text)
	lighting := moods[mood].lighting

	preset := styles[style]
	return types.VisualConcepts{
		SceneDescription:      sceneDescription(elements, mood, lighting),
		Elements:              elements,
		Mood:                  mood,
		Lighting:              lighting,
		ColorPalette:          palette(elements, mood),
		Style:                 types.StylePreset{Name: style, Description: preset.description, Characteristics: preset.characteristics},
		CompositionSuggestion: m.suggestComposition(text, elements),
	}, nil
}

// extractElements collects the matched keywords per category, deduplicated
// and lowercased, in fixed category order, capped at MaxConcepts categories.
func (m *Mapper) extractElements(text string) []types.DetectedElement {
	var out []types.DetectedElement
	for _, category := range categoryOrder {
		matches := m.elementPatterns[category].FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		seen := make(map[string]bool, len(matches))
		var unique []string
		for _, kw := range matches {
			kw = strings.ToLower(kw)
			if !seen[kw] {
				seen[kw] = true
				unique = append(unique, kw)
			}
		}
		out = append(out, types.DetectedElement{
			Category: category,
			Keywords: unique,
			Count:    len(matches),
		})
		if len(out) >= m.cfg.MaxConcepts {
			break
		}
	}
	return out
}

// determineMood picks the mood with the most keyword hits; ties resolve in
// moodOrder, and no hits at all reads as peaceful.
func (m *Mapper) determineMood(text string) string {
	best := defaultMood
	bestCount := 0
	for _, mood := range moodOrder {
		if n := len(m.moodPatterns[mood].FindAllString(text, -1)); n > bestCount {
			best = mood
			bestCount = n
		}
	}
	return best
}

// palette merges element colors (two per detected category) with the
// mood's first three, padding with white/black/gray up to five and capping
// at seven. Order of first appearance is kept so output is deterministic.
func palette(elements []types.DetectedElement, mood string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(colors []string, limit int) {
		for i, c := range colors {
			if i >= limit {
				return
			}
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}

	for _, el := range elements {
		add(visualElements[el.Category].colors, 2)
	}
	add(moods[mood].colors, 3)
	if len(out) < 5 {
		add([]string{"#FFFFFF", "#000000", "#808080"}, 3)
	}
	if len(out) > 7 {
		out = out[:7]
	}
	return out
}

func sceneDescription(elements []types.DetectedElement, mood, lighting string) string {
	parts := []string{fmt.Sprintf("A %s scene", mood)}

	var featured []string
	for _, el := range elements {
		for i, kw := range el.Keywords {
			if i >= 2 {
				break
			}
			featured = append(featured, kw)
		}
	}
	if len(featured) > 4 {
		featured = featured[:4]
	}
	if len(featured) > 0 {
		parts = append(parts, "featuring "+strings.Join(featured, ", "))
	}

	parts = append(parts, "with "+lighting)
	return strings.Join(parts, " ") + "."
}

// suggestComposition picks a composition family from the detected content:
// rich nature reads as landscape, characters as portrait, action verbs as
// action, everything else as atmospheric.
func (m *Mapper) suggestComposition(text string, elements []types.DetectedElement) []string {
	byCategory := make(map[string]types.DetectedElement, len(elements))
	for _, el := range elements {
		byCategory[el.Category] = el
	}

	switch {
	case len(byCategory["nature"].Keywords) > 2:
		return compositionTypes["landscape"][:2]
	case len(byCategory["characters"].Keywords) > 0:
		return compositionTypes["portrait"][:2]
	case containsAny(strings.ToLower(text), actionWords):
		return compositionTypes["action"][:2]
	default:
		return compositionTypes["atmospheric"][:2]
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
