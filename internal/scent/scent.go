// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scent maps narrative text to diffuser scent profiles. Text is
// scanned for scent-family keywords, the detected families are optionally
// biased toward the passage's emotion, and the result is rendered as a
// primary scent, ambient companions, and a multi-channel blend recipe.
package scent

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/immersion-engine/pkg/types"
)

const blendTimeMs = 500

// Mapper converts text into scent profiles. It holds compiled keyword
// patterns and is safe for concurrent use.
type Mapper struct {
	cfg            types.ScentConfig
	familyPatterns map[string]*regexp.Regexp
}

// NewMapper builds a mapper with the given configuration.
func NewMapper(cfg types.ScentConfig) *Mapper {
	if cfg.DefaultIntensity <= 0 {
		cfg.DefaultIntensity = 0.5
	}
	if cfg.MaxBlendComponents <= 0 {
		cfg.MaxBlendComponents = 5
	}
	m := &Mapper{
		cfg:            cfg,
		familyPatterns: make(map[string]*regexp.Regexp, len(scentFamilies)),
	}
	for name, fam := range scentFamilies {
		m.familyPatterns[name] = wordPattern(fam.keywords)
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

// Families lists every scent family with its channel assignment, in
// channel order.
func Families() []types.ScentFamilyInfo {
	out := make([]types.ScentFamilyInfo, 0, len(familyOrder))
	for _, name := range familyOrder {
		fam := scentFamilies[name]
		scents := make([]string, len(fam.scents))
		for i, s := range fam.scents {
			scents[i] = s.name
		}
		out = append(out, types.ScentFamilyInfo{
			Name:          name,
			Channel:       channelMap[name],
			Keywords:      append([]string(nil), fam.keywords...),
			Scents:        scents,
			BaseIntensity: fam.baseIntensity,
		})
	}
	return out
}

// Generate builds a scent profile for the text. Intensity scales every
// component and must lie in [0, 1]; zero selects the configured default.
// The emotion, when known, biases family selection toward its olfactory
// associations. Texts with no family keywords fall back to a light fresh
// profile.
func (m *Mapper) Generate(text string, intensity float64, emotion string) (types.ScentProfile, error) {
	if strings.TrimSpace(text) == "" {
		return types.ScentProfile{}, fmt.Errorf("%w: empty text", types.ErrInvalidInput)
	}
	if math.IsNaN(intensity) || intensity < 0 || intensity > 1 {
		return types.ScentProfile{}, fmt.Errorf("%w: intensity %v outside [0, 1]", types.ErrInvalidInput, intensity)
	}
	if intensity == 0 {
		intensity = m.cfg.DefaultIntensity
	}

	scores := m.detectFamilies(text)
	applyEmotionBias(scores, emotion)
	if len(scores) == 0 {
		scores[defaultFamily] = 1
	}

	ranked := rankFamilies(scores)
	primaryName := ranked[0]
	primaryFam := scentFamilies[primaryName]
	primary := scentFor(primaryFam.scents[0], primaryName,
		round2(math.Min(1, primaryFam.baseIntensity*intensity*1.5)))

	var ambient []types.Scent
	for _, name := range ranked[1:] {
		if len(ambient) == 3 {
			break
		}
		fam := scentFamilies[name]
		entry := fam.scents[len(fam.scents)-1]
		ambient = append(ambient, scentFor(entry, name,
			round2(math.Min(1, fam.baseIntensity*intensity*0.5))))
	}

	return types.ScentProfile{
		PrimaryScent:     primary,
		AmbientScents:    ambient,
		BlendRecipe:      m.blendRecipe(ranked, scores, intensity),
		DetectedFamilies: ranked,
		OverallIntensity: round2(intensity),
	}, nil
}

func (m *Mapper) detectFamilies(text string) map[string]int {
	scores := make(map[string]int)
	for name, pattern := range m.familyPatterns {
		if n := len(pattern.FindAllString(text, -1)); n > 0 {
			scores[name] = n
		}
	}
	return scores
}

// applyEmotionBias nudges scores toward the families associated with the
// emotion: detected families gain 2 points, undetected ones enter with 1.
func applyEmotionBias(scores map[string]int, emotion string) {
	preferred, ok := emotionScents[strings.ToLower(emotion)]
	if !ok {
		return
	}
	for _, name := range preferred {
		if _, detected := scores[name]; detected {
			scores[name] += 2
		} else {
			scores[name] = 1
		}
	}
}

// rankFamilies orders families by score descending, breaking ties by
// channel order so equal texts always rank identically.
func rankFamilies(scores map[string]int) []string {
	ranked := make([]string, 0, len(scores))
	for _, name := range familyOrder {
		if scores[name] > 0 {
			ranked = append(ranked, name)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}

// blendRecipe shares the diffuser output across the ranked families in
// proportion to their scores.
func (m *Mapper) blendRecipe(ranked []string, scores map[string]int, intensity float64) types.BlendRecipe {
	if len(ranked) > m.cfg.MaxBlendComponents {
		ranked = ranked[:m.cfg.MaxBlendComponents]
	}
	total := 0
	for _, name := range ranked {
		total += scores[name]
	}
	components := make([]types.BlendComponent, 0, len(ranked))
	for _, name := range ranked {
		share := float64(scores[name]) / float64(total)
		components = append(components, types.BlendComponent{
			Family:     name,
			Channel:    channelMap[name],
			Percentage: round2(share),
			Intensity:  round2(math.Min(1, intensity*share*2)),
		})
	}
	return types.BlendRecipe{Components: components, BlendTimeMs: blendTimeMs}
}

func scentFor(entry scentEntry, family string, intensity float64) types.Scent {
	return types.Scent{
		Name:      entry.name,
		Family:    family,
		Intensity: intensity,
		Notes:     append([]string(nil), entry.notes...),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
