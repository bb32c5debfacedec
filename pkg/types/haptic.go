// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// HapticEvent is one discrete vibration instruction. TimeMs is the event's
// start offset from the beginning of the pattern.
type HapticEvent struct {
	TimeMs     int     `json:"time_ms" yaml:"time_ms"`
	Intensity  float64 `json:"intensity" yaml:"intensity"`
	DurationMs int     `json:"duration_ms" yaml:"duration_ms"`
}

// HapticPattern is a physically playable vibration timeline. Events are
// ordered by TimeMs ascending. RepeatIntervalMs is set only when Repeat is
// true and is never shorter than the timeline span.
type HapticPattern struct {
	Name             string        `json:"name" yaml:"name"`
	Description      string        `json:"description" yaml:"description"`
	Events           []HapticEvent `json:"events" yaml:"events"`
	Repeat           bool          `json:"repeat" yaml:"repeat"`
	RepeatIntervalMs int           `json:"repeat_interval_ms,omitempty" yaml:"repeat_interval_ms,omitempty"`
}

// Span returns the timeline length in milliseconds: the last event's start
// offset plus its duration, or 0 for an empty pattern.
func (p HapticPattern) Span() int {
	if len(p.Events) == 0 {
		return 0
	}
	last := p.Events[len(p.Events)-1]
	return last.TimeMs + last.DurationMs
}

// Validate checks the pattern invariants: intensities in [0,1], positive
// durations, non-decreasing event times, and repeat interval consistency.
func (p HapticPattern) Validate() error {
	prev := -1
	for i, e := range p.Events {
		if e.Intensity < 0 || e.Intensity > 1 {
			return fmt.Errorf("pattern %s: event %d intensity %v out of [0,1]", p.Name, i, e.Intensity)
		}
		if e.DurationMs <= 0 {
			return fmt.Errorf("pattern %s: event %d duration %d must be positive", p.Name, i, e.DurationMs)
		}
		if e.TimeMs < prev {
			return fmt.Errorf("pattern %s: event %d time %d before previous event", p.Name, i, e.TimeMs)
		}
		prev = e.TimeMs
	}
	if p.Repeat {
		if p.RepeatIntervalMs < p.Span() {
			return fmt.Errorf("pattern %s: repeat interval %d shorter than span %d", p.Name, p.RepeatIntervalMs, p.Span())
		}
	} else if p.RepeatIntervalMs != 0 {
		return fmt.Errorf("pattern %s: repeat interval set on non-repeating pattern", p.Name)
	}
	return nil
}
