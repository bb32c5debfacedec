// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package haptics

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pdiddy/immersion-engine/pkg/types"
)

func newTestEngine() *Engine {
	return NewEngine(types.HapticsConfig{DefaultIntensity: 0.5, MaxEventsPerPattern: 100})
}

func checkInvariants(t *testing.T, p types.HapticPattern) {
	t.Helper()
	if err := p.Validate(); err != nil {
		t.Errorf("pattern violates invariants: %v", err)
	}
}

func TestFromTextPunctuationMapping(t *testing.T) {
	e := newTestEngine()
	p, err := e.FromText("The adventure begins! Are you ready?")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	checkInvariants(t, p)

	if p.Name != "text_generated" {
		t.Errorf("Name = %s, want text_generated", p.Name)
	}
	if p.Repeat {
		t.Error("text-driven pattern must not repeat")
	}
	want := []types.HapticEvent{
		{TimeMs: 0, Intensity: 0.9, DurationMs: 80},    // !
		{TimeMs: 130, Intensity: 0.5, DurationMs: 150}, // ? at 80+50
	}
	if !reflect.DeepEqual(p.Events, want) {
		t.Errorf("Events = %+v, want %+v", p.Events, want)
	}
}

func TestFromTextRunningOffsets(t *testing.T) {
	e := newTestEngine()
	p, err := e.FromText("One, two. Three!")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	checkInvariants(t, p)
	if len(p.Events) != 3 {
		t.Fatalf("got %d events, want 3", len(p.Events))
	}
	// comma 60ms, period 60ms, bang 80ms with 50ms gaps between
	wantTimes := []int{0, 110, 220}
	for i, ev := range p.Events {
		if ev.TimeMs != wantTimes[i] {
			t.Errorf("event %d time = %d, want %d", i, ev.TimeMs, wantTimes[i])
		}
	}
}

func TestFromTextCJKMapsLikeLatin(t *testing.T) {
	e := newTestEngine()
	latin, err := e.FromText("Go! Now? Done.")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	cjk, err := e.FromText("走！現在？好了。")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	if !reflect.DeepEqual(latin.Events, cjk.Events) {
		t.Errorf("CJK events %+v differ from Latin %+v", cjk.Events, latin.Events)
	}
}

func TestFromTextNoPunctuation(t *testing.T) {
	e := newTestEngine()
	p, err := e.FromText("just words with nothing to tap")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	if len(p.Events) != 0 {
		t.Errorf("got %d events, want 0", len(p.Events))
	}
	checkInvariants(t, p)
}

func TestFromTextEventCap(t *testing.T) {
	e := NewEngine(types.HapticsConfig{DefaultIntensity: 0.5, MaxEventsPerPattern: 3})
	p, err := e.FromText("a. b. c. d. e. f.")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	if len(p.Events) != 3 {
		t.Errorf("got %d events, want cap of 3", len(p.Events))
	}
}

func TestFromTextEmpty(t *testing.T) {
	e := newTestEngine()
	if _, err := e.FromText("  \n "); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("FromText() error = %v, want ErrInvalidInput", err)
	}
}

func TestFromEmotionScaling(t *testing.T) {
	e := newTestEngine()
	p, err := e.FromEmotion("calm", 0.5)
	if err != nil {
		t.Fatalf("FromEmotion() error = %v", err)
	}
	checkInvariants(t, p)

	tpl := emotionTemplates["calm"]
	if len(p.Events) != len(tpl.events) {
		t.Fatalf("got %d events, want %d", len(p.Events), len(tpl.events))
	}
	for i, ev := range p.Events {
		if want := tpl.events[i].Intensity * 0.5; ev.Intensity != want {
			t.Errorf("event %d intensity = %v, want %v", i, ev.Intensity, want)
		}
		if ev.TimeMs != tpl.events[i].TimeMs || ev.DurationMs != tpl.events[i].DurationMs {
			t.Errorf("event %d timing changed by scaling", i)
		}
	}
}

func TestFromEmotionRepeatSemantics(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		emotion string
		repeat  bool
	}{
		{"calm", true},
		{"sad", true},
		{"happy", false},
		{"excited", false},
		{"tense", false},
		{"surprised", false},
	}
	for _, tt := range tests {
		t.Run(tt.emotion, func(t *testing.T) {
			p, err := e.FromEmotion(tt.emotion, 0.8)
			if err != nil {
				t.Fatalf("FromEmotion() error = %v", err)
			}
			checkInvariants(t, p)
			if p.Repeat != tt.repeat {
				t.Errorf("Repeat = %v, want %v", p.Repeat, tt.repeat)
			}
			if p.Repeat && p.RepeatIntervalMs < p.Span() {
				t.Errorf("repeat interval %d < span %d", p.RepeatIntervalMs, p.Span())
			}
			if !p.Repeat && p.RepeatIntervalMs != 0 {
				t.Errorf("non-repeating pattern carries interval %d", p.RepeatIntervalMs)
			}
		})
	}
}

func TestFromEmotionScalingClamps(t *testing.T) {
	e := newTestEngine()
	p, err := e.FromEmotion("excited", 1.0)
	if err != nil {
		t.Fatalf("FromEmotion() error = %v", err)
	}
	for i, ev := range p.Events {
		if ev.Intensity < 0 || ev.Intensity > 1 {
			t.Errorf("event %d intensity %v out of [0,1]", i, ev.Intensity)
		}
	}
}

func TestFromEmotionInvalidInput(t *testing.T) {
	e := newTestEngine()
	if _, err := e.FromEmotion("melancholic", 0.5); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("unknown emotion error = %v, want ErrInvalidInput", err)
	}
	if _, err := e.FromEmotion("calm", 1.5); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("out-of-range intensity error = %v, want ErrInvalidInput", err)
	}
	if _, err := e.FromEmotion("calm", -0.1); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("negative intensity error = %v, want ErrInvalidInput", err)
	}
}

func TestNamedCatalog(t *testing.T) {
	e := newTestEngine()
	for _, name := range []string{"heartbeat", "gentle_pulse", "sharp_tap", "rumble", "wave", "breathe"} {
		t.Run(name, func(t *testing.T) {
			p, err := e.Named(name)
			if err != nil {
				t.Fatalf("Named(%s) error = %v", name, err)
			}
			checkInvariants(t, p)
			if p.Name != name {
				t.Errorf("Name = %s, want %s", p.Name, name)
			}
			if len(p.Events) == 0 {
				t.Error("catalog pattern has no events")
			}
		})
	}
}

func TestNamedIsStableAcrossCalls(t *testing.T) {
	e := newTestEngine()
	first, err := e.Named("heartbeat")
	if err != nil {
		t.Fatalf("Named() error = %v", err)
	}
	if !first.Repeat {
		t.Error("heartbeat should repeat")
	}

	// Mutating a returned copy must not leak into later lookups.
	first.Events[0].Intensity = 0
	second, _ := e.Named("heartbeat")
	if second.Events[0].Intensity == 0 {
		t.Error("catalog pattern was mutated through a returned copy")
	}
}

func TestNamedUnknown(t *testing.T) {
	e := newTestEngine()
	if _, err := e.Named("tickle"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("Named() error = %v, want ErrNotFound", err)
	}
}

func TestGeneratePrecedence(t *testing.T) {
	e := newTestEngine()
	half := 0.5

	p, err := e.Generate(Request{Text: "Hi!", Emotion: "calm", Intensity: &half, PatternName: "heartbeat"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if p.Name != "text_generated" {
		t.Errorf("text should win precedence, got %s", p.Name)
	}

	p, err = e.Generate(Request{Emotion: "calm", Intensity: &half, PatternName: "heartbeat"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if p.Name != "calm_emotion" {
		t.Errorf("emotion should win over pattern name, got %s", p.Name)
	}

	p, err = e.Generate(Request{PatternName: "heartbeat"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if p.Name != "heartbeat" {
		t.Errorf("pattern lookup got %s", p.Name)
	}

	if _, err := e.Generate(Request{}); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("empty request error = %v, want ErrInvalidInput", err)
	}
}

func TestGenerateDefaultIntensity(t *testing.T) {
	e := newTestEngine()
	p, err := e.Generate(Request{Emotion: "calm"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	tpl := emotionTemplates["calm"]
	if want := tpl.events[0].Intensity * 0.5; p.Events[0].Intensity != want {
		t.Errorf("default intensity scaling = %v, want %v", p.Events[0].Intensity, want)
	}
}

func TestPatternNamesSorted(t *testing.T) {
	names := PatternNames()
	want := []string{"breathe", "gentle_pulse", "heartbeat", "rumble", "sharp_tap", "wave"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("PatternNames() = %v, want %v", names, want)
	}
}
