// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Sentiment holds the polarity/subjectivity pair computed independently of
// the discrete emotion scores. Polarity is in [-1,1], subjectivity in [0,1];
// the pair may disagree with the primary emotion.
type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// EmotionDetails carries the extra fields returned when detailed analysis
// is requested.
type EmotionDetails struct {
	KeywordCounts  map[string]int `json:"keyword_counts"`
	TextLength     int            `json:"text_length"`
	HasNegation    bool           `json:"has_negation"`
	HasIntensifier bool           `json:"has_intensifier"`
}

// EmotionProfile is the analyzer's fixed-shape output for one text. Scores
// are independent detectors clamped to [0,1] and need not sum to 1.
type EmotionProfile struct {
	PrimaryEmotion string             `json:"primary_emotion"`
	Confidence     float64            `json:"confidence"`
	Emotions       map[string]float64 `json:"emotions"`
	Sentiment      Sentiment          `json:"sentiment"`
	Intensity      float64            `json:"intensity"`
	Details        *EmotionDetails    `json:"details,omitempty"`
}
