// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits narrative text into ordered semantic chunks.
// All functions are pure: the same text and strategy always produce the
// same segments.
package segment

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/immersion-engine/pkg/types"
)

// DefaultMaxChunkSize caps a merged sentence group under the adaptive
// strategy when the caller passes no limit.
const DefaultMaxChunkSize = 500

// sentence-terminal punctuation, Latin and CJK.
const terminals = ".!?。！？"

var paragraphBreak = regexp.MustCompile(`\n[ \t]*\n+`)

// Split cuts text into segments under the given strategy. maxChunkSize
// bounds merged groups for the adaptive strategy; values <= 0 fall back to
// DefaultMaxChunkSize. Text that is empty after trimming is an invalid input.
func Split(text string, strategy types.Strategy, maxChunkSize int) ([]types.Segment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text must not be empty", types.ErrInvalidInput)
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: unknown strategy %q", types.ErrInvalidInput, strategy)
	}
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultMaxChunkSize
	}

	switch strategy {
	case types.StrategySentences:
		return build(sentences(text), types.SegmentSentence), nil
	case types.StrategyParagraphs:
		return build(paragraphs(text), types.SegmentParagraph), nil
	default:
		return build(adaptive(text, maxChunkSize), types.SegmentSentenceGroup), nil
	}
}

// Metadata derives the segment-count and length statistics the callers
// report alongside the segments.
func Metadata(text string, segments []types.Segment, strategy types.Strategy) types.SegmentationResult {
	total := 0
	for _, s := range segments {
		total += s.Length
	}
	avg := 0.0
	if len(segments) > 0 {
		avg = float64(total) / float64(len(segments))
	}
	return types.SegmentationResult{
		Segments:      segments,
		TotalSegments: len(segments),
		TotalLength:   utf8.RuneCountInString(text),
		AverageLength: avg,
		StrategyUsed:  strategy,
	}
}

func build(chunks []string, kind types.SegmentType) []types.Segment {
	segs := make([]types.Segment, 0, len(chunks))
	for _, c := range chunks {
		segs = append(segs, types.Segment{
			Text:   c,
			Index:  len(segs),
			Type:   kind,
			Length: utf8.RuneCountInString(c),
		})
	}
	return segs
}

// sentences splits on sentence-terminal punctuation, keeping the terminator
// (and any run of terminators, e.g. "?!" or "...") with its sentence. Empty
// fragments are dropped.
func sentences(text string) []string {
	var out []string
	var cur strings.Builder
	closing := false
	for _, r := range text {
		terminal := strings.ContainsRune(terminals, r)
		if closing && !terminal {
			if s := strings.TrimSpace(cur.String()); s != "" {
				out = append(out, s)
			}
			cur.Reset()
		}
		cur.WriteRune(r)
		closing = terminal
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// paragraphs splits on blank-line boundaries and trims each paragraph.
func paragraphs(text string) []string {
	var out []string
	for _, p := range paragraphBreak.Split(text, -1) {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// adaptive starts from sentence units and greedily merges consecutive
// sentences until appending the next one would exceed maxChunkSize
// characters. Text that already fits in a single chunk keeps its sentence
// boundaries, so short inputs still segment per sentence. A single
// oversized sentence stays its own group.
func adaptive(text string, maxChunkSize int) []string {
	units := sentences(text)
	if utf8.RuneCountInString(text) <= maxChunkSize {
		return units
	}
	var out []string
	var cur string
	for _, s := range units {
		if cur == "" {
			cur = s
			continue
		}
		if utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(s) <= maxChunkSize {
			cur += " " + s
			continue
		}
		out = append(out, cur)
		cur = s
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}
