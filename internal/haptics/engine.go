// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package haptics synthesizes timed vibration patterns from text
// punctuation, emotion cues, or a fixed named catalog.
package haptics

import (
	"fmt"
	"math"
	"strings"

	"github.com/pdiddy/immersion-engine/pkg/types"
)

// interEventGapMs separates consecutive text-driven events, which keeps the
// timeline non-decreasing by construction.
const interEventGapMs = 50

// eventTemplate is the vibration shape one punctuation mark maps to.
type eventTemplate struct {
	intensity  float64
	durationMs int
}

// punctuationMap assigns an event template per mark; CJK marks map
// identically to their Latin counterparts. Unmapped characters contribute
// no event.
var punctuationMap = map[rune]eventTemplate{
	'!': {intensity: 0.9, durationMs: 80},  // sharp tap
	'！': {intensity: 0.9, durationMs: 80},
	'?': {intensity: 0.5, durationMs: 150}, // rising pulse
	'？': {intensity: 0.5, durationMs: 150},
	'.': {intensity: 0.3, durationMs: 60}, // soft tick
	'。': {intensity: 0.3, durationMs: 60},
	',': {intensity: 0.3, durationMs: 60},
	'，': {intensity: 0.3, durationMs: 60},
}

// Request selects a generation mode by which field is set. When several are
// set, Text takes precedence over Emotion, which takes precedence over
// PatternName.
type Request struct {
	Text string `json:"text,omitempty"`

	Emotion string `json:"emotion,omitempty"`
	// Intensity scales the emotion template; nil means the configured
	// default. Ignored outside emotion mode.
	Intensity *float64 `json:"intensity,omitempty"`

	PatternName string `json:"pattern_name,omitempty"`
}

// Engine turns requests into physically playable vibration timelines. It is
// stateless and safe for concurrent use.
type Engine struct {
	cfg types.HapticsConfig
}

// NewEngine returns an engine with the given limits. Zero-value fields fall
// back to the documented defaults (intensity 0.5, 100 events per pattern).
func NewEngine(cfg types.HapticsConfig) *Engine {
	if cfg.DefaultIntensity <= 0 {
		cfg.DefaultIntensity = 0.5
	}
	if cfg.MaxEventsPerPattern <= 0 {
		cfg.MaxEventsPerPattern = 100
	}
	return &Engine{cfg: cfg}
}

// Generate dispatches on the populated request field with documented
// precedence: text, then emotion, then pattern name. A request with no mode
// set is an invalid input.
func (e *Engine) Generate(req Request) (types.HapticPattern, error) {
	switch {
	case req.Text != "":
		return e.FromText(req.Text)
	case req.Emotion != "":
		intensity := e.cfg.DefaultIntensity
		if req.Intensity != nil {
			intensity = *req.Intensity
		}
		return e.FromEmotion(req.Emotion, intensity)
	case req.PatternName != "":
		return e.Named(req.PatternName)
	default:
		return types.HapticPattern{}, fmt.Errorf("%w: provide text, emotion, or pattern_name", types.ErrInvalidInput)
	}
}

// FromText scans text left to right and emits one event per mapped
// punctuation mark. Each event starts after the previous event's end plus a
// fixed gap, so times are non-decreasing by construction.
func (e *Engine) FromText(text string) (types.HapticPattern, error) {
	if strings.TrimSpace(text) == "" {
		return types.HapticPattern{}, fmt.Errorf("%w: text must not be empty", types.ErrInvalidInput)
	}

	events := []types.HapticEvent{}
	next := 0
	for _, r := range text {
		tpl, ok := punctuationMap[r]
		if !ok {
			continue
		}
		events = append(events, types.HapticEvent{
			TimeMs:     next,
			Intensity:  tpl.intensity,
			DurationMs: tpl.durationMs,
		})
		next += tpl.durationMs + interEventGapMs
		if len(events) >= e.cfg.MaxEventsPerPattern {
			break
		}
	}

	return types.HapticPattern{
		Name:        "text_generated",
		Description: "Generated from text punctuation",
		Events:      events,
	}, nil
}

// FromEmotion scales the named emotion template by intensity. Intensities
// clamp to [0,1] after scaling; offsets and durations stay unscaled.
func (e *Engine) FromEmotion(emotion string, intensity float64) (types.HapticPattern, error) {
	if math.IsNaN(intensity) || intensity < 0 || intensity > 1 {
		return types.HapticPattern{}, fmt.Errorf("%w: intensity %v out of [0,1]", types.ErrInvalidInput, intensity)
	}
	key := strings.ToLower(strings.TrimSpace(emotion))
	tpl, ok := emotionTemplates[key]
	if !ok {
		return types.HapticPattern{}, fmt.Errorf("%w: unknown emotion %q", types.ErrInvalidInput, emotion)
	}

	events := make([]types.HapticEvent, len(tpl.events))
	for i, ev := range tpl.events {
		ev.Intensity = clamp01(ev.Intensity * intensity)
		events[i] = ev
	}
	p := types.HapticPattern{
		Name:        key + "_emotion",
		Description: fmt.Sprintf("Generated from emotion %q at intensity %.2f", key, intensity),
		Events:      events,
		Repeat:      tpl.repeat,
	}
	if tpl.repeat {
		p.RepeatIntervalMs = tpl.repeatIntervalMs
	}
	return p, nil
}

// Named returns a copy of the catalog pattern with the given name.
func (e *Engine) Named(name string) (types.HapticPattern, error) {
	p, ok := catalog[name]
	if !ok {
		return types.HapticPattern{}, fmt.Errorf("%w: haptic pattern %q", types.ErrNotFound, name)
	}
	// Copy the events so callers can never mutate the catalog.
	p.Events = append([]types.HapticEvent(nil), p.Events...)
	return p, nil
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
