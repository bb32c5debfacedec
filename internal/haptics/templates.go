// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package haptics

import "github.com/pdiddy/immersion-engine/pkg/types"

// emotionTemplate is a short relative timeline whose intensities get scaled
// by the request's intensity. Offsets and durations stay fixed. Ambient
// emotions repeat; punctual ones play once.
type emotionTemplate struct {
	events           []types.HapticEvent
	repeat           bool
	repeatIntervalMs int
}

var emotionTemplates = map[string]emotionTemplate{
	"happy": {
		events: []types.HapticEvent{
			{TimeMs: 0, Intensity: 0.6, DurationMs: 100},
			{TimeMs: 150, Intensity: 0.7, DurationMs: 100},
			{TimeMs: 300, Intensity: 0.8, DurationMs: 120},
		},
	},
	"excited": {
		// double tap rising into a longer hit
		events: []types.HapticEvent{
			{TimeMs: 0, Intensity: 0.7, DurationMs: 60},
			{TimeMs: 110, Intensity: 0.9, DurationMs: 60},
			{TimeMs: 220, Intensity: 1.0, DurationMs: 80},
		},
	},
	"calm": {
		// heartbeat-like slow pulse
		events: []types.HapticEvent{
			{TimeMs: 0, Intensity: 0.5, DurationMs: 200},
			{TimeMs: 800, Intensity: 0.4, DurationMs: 200},
		},
		repeat:           true,
		repeatIntervalMs: 2000,
	},
	"sad": {
		events: []types.HapticEvent{
			{TimeMs: 0, Intensity: 0.4, DurationMs: 400},
			{TimeMs: 900, Intensity: 0.3, DurationMs: 400},
		},
		repeat:           true,
		repeatIntervalMs: 2400,
	},
	"tense": {
		events: []types.HapticEvent{
			{TimeMs: 0, Intensity: 0.8, DurationMs: 50},
			{TimeMs: 100, Intensity: 0.8, DurationMs: 50},
			{TimeMs: 200, Intensity: 0.8, DurationMs: 50},
			{TimeMs: 300, Intensity: 0.8, DurationMs: 50},
		},
	},
	"surprised": {
		events: []types.HapticEvent{
			{TimeMs: 0, Intensity: 1.0, DurationMs: 80},
			{TimeMs: 200, Intensity: 0.5, DurationMs: 60},
		},
	},
}
