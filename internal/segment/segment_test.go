// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/immersion-engine/pkg/types"
)

func texts(segs []types.Segment) []string {
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		out = append(out, s.Text)
	}
	return out
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"latin terminators",
			"The adventure begins! Are you ready? Let us go.",
			[]string{"The adventure begins!", "Are you ready?", "Let us go."},
		},
		{
			"cjk terminators",
			"冒險開始了！你準備好了嗎？我們走。",
			[]string{"冒險開始了！", "你準備好了嗎？", "我們走。"},
		},
		{
			"terminator runs stay attached",
			"What?! Really... Yes.",
			[]string{"What?!", "Really...", "Yes."},
		},
		{
			"trailing text without terminator",
			"First. and then some",
			[]string{"First.", "and then some"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs, err := Split(tt.text, types.StrategySentences, 0)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if got := texts(segs); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %q, want %q", got, tt.want)
			}
			for i, s := range segs {
				if s.Index != i {
					t.Errorf("segment %d has index %d", i, s.Index)
				}
				if s.Type != types.SegmentSentence {
					t.Errorf("segment %d has type %s", i, s.Type)
				}
			}
		})
	}
}

func TestSplitParagraphs(t *testing.T) {
	text := "First paragraph.\nStill first.\n\nSecond paragraph.\n   \n\nThird."
	segs, err := Split(text, types.StrategyParagraphs, 0)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	want := []string{"First paragraph.\nStill first.", "Second paragraph.", "Third."}
	if got := texts(segs); !reflect.DeepEqual(got, want) {
		t.Errorf("Split() = %q, want %q", got, want)
	}
	if segs[0].Type != types.SegmentParagraph {
		t.Errorf("paragraph segment has type %s", segs[0].Type)
	}
}

func TestSplitAdaptiveShortTextKeepsSentences(t *testing.T) {
	segs, err := Split("The adventure begins! Are you ready?", types.StrategyAdaptive, 0)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments for short text, got %d: %q", len(segs), texts(segs))
	}
	if segs[0].Type != types.SegmentSentenceGroup {
		t.Errorf("adaptive segment has type %s", segs[0].Type)
	}
}

func TestSplitAdaptiveMergesUpToChunkSize(t *testing.T) {
	// Four 10-char sentences with a 25-char budget merge pairwise once the
	// text itself exceeds the budget.
	text := strings.TrimSpace(strings.Repeat("abcdefghi. ", 4))
	segs, err := Split(text, types.StrategyAdaptive, 25)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	want := []string{"abcdefghi. abcdefghi.", "abcdefghi. abcdefghi."}
	if got := texts(segs); !reflect.DeepEqual(got, want) {
		t.Errorf("Split() = %q, want %q", got, want)
	}
}

func TestSplitAdaptiveOversizedSentenceStandsAlone(t *testing.T) {
	long := strings.Repeat("x", 40) + "."
	text := long + " Short one. Another bit."
	segs, err := Split(text, types.StrategyAdaptive, 30)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if segs[0].Text != long {
		t.Errorf("first segment = %q, want the oversized sentence alone", segs[0].Text)
	}
}

func TestSplitDeterministic(t *testing.T) {
	text := "One. Two! Three?\n\nFour."
	for _, strategy := range []types.Strategy{types.StrategySentences, types.StrategyParagraphs, types.StrategyAdaptive} {
		a, err := Split(text, strategy, 0)
		if err != nil {
			t.Fatalf("Split(%s) error = %v", strategy, err)
		}
		b, _ := Split(text, strategy, 0)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Split(%s) is not deterministic", strategy)
		}
	}
}

func TestSplitCoverage(t *testing.T) {
	// Concatenating segment texts reconstructs the input up to whitespace.
	strip := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}
	text := "A first sentence. A second one!\n\nA new paragraph? Yes."
	for _, strategy := range []types.Strategy{types.StrategySentences, types.StrategyParagraphs} {
		segs, err := Split(text, strategy, 0)
		if err != nil {
			t.Fatalf("Split(%s) error = %v", strategy, err)
		}
		if got := strip(strings.Join(texts(segs), " ")); got != strip(text) {
			t.Errorf("Split(%s) coverage: got %q, want %q", strategy, got, strip(text))
		}
	}
}

func TestSplitInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		strategy types.Strategy
	}{
		{"empty", "", types.StrategyAdaptive},
		{"whitespace only", "   \n\t ", types.StrategySentences},
		{"unknown strategy", "some text", types.Strategy("words")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Split(tt.text, tt.strategy, 0); !errors.Is(err, types.ErrInvalidInput) {
				t.Errorf("Split() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestMetadata(t *testing.T) {
	text := "One. Two!"
	segs, err := Split(text, types.StrategySentences, 0)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	meta := Metadata(text, segs, types.StrategySentences)
	if meta.TotalSegments != 2 {
		t.Errorf("TotalSegments = %d, want 2", meta.TotalSegments)
	}
	if meta.TotalLength != 9 {
		t.Errorf("TotalLength = %d, want 9", meta.TotalLength)
	}
	if meta.StrategyUsed != types.StrategySentences {
		t.Errorf("StrategyUsed = %s", meta.StrategyUsed)
	}
	if meta.AverageLength != 4 {
		t.Errorf("AverageLength = %v, want 4", meta.AverageLength)
	}
}
