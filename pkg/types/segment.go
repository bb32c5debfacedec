// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the value types exchanged between pipeline stages
// and serialized on the HTTP surface.
package types

// Strategy selects how narrative text is cut into segments.
type Strategy string

const (
	StrategySentences  Strategy = "sentences"
	StrategyParagraphs Strategy = "paragraphs"
	StrategyAdaptive   Strategy = "adaptive"
)

// Valid reports whether s names a supported segmentation strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategySentences, StrategyParagraphs, StrategyAdaptive:
		return true
	}
	return false
}

// SegmentType describes what kind of unit a Segment holds.
type SegmentType string

const (
	SegmentSentence      SegmentType = "sentence"
	SegmentParagraph     SegmentType = "paragraph"
	SegmentSentenceGroup SegmentType = "sentence_group"
)

// Segment is one contiguous slice of the input text treated as a semantic
// unit. Index is the segment's position in the ordered sequence; segments
// are immutable once produced.
type Segment struct {
	Text   string      `json:"text"`
	Index  int         `json:"index"`
	Type   SegmentType `json:"type"`
	Length int         `json:"length"`
}

// SegmentationResult bundles segments with the metadata derived from them.
type SegmentationResult struct {
	Segments      []Segment `json:"segments"`
	TotalSegments int       `json:"total_segments"`
	TotalLength   int       `json:"total_length"`
	AverageLength float64   `json:"average_length"`
	StrategyUsed  Strategy  `json:"strategy_used"`
}
