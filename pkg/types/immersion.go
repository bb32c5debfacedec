// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Voice describes one synthesizer voice.
type Voice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
}

// VoiceList is the available-voices report from the auditory adapter.
// Fallback is true when the primary engine could not serve the listing.
type VoiceList struct {
	Voices   []Voice `json:"voices"`
	Engine   string  `json:"engine"`
	Fallback bool    `json:"fallback"`
}

// AuditoryOutput describes the audio side of an immersion result. It carries
// descriptors only; the audio bytes themselves are fetched through /tts.
type AuditoryOutput struct {
	TTSEngine       string  `json:"tts_engine"`
	Segments        int     `json:"segments"`
	Language        string  `json:"language"`
	AvailableVoices []Voice `json:"available_voices"`
}

// SensoryOutput bundles the haptic timeline with the derived neuro cue.
type SensoryOutput struct {
	HapticPattern     HapticPattern `json:"haptic_pattern"`
	HapticEventsCount int           `json:"haptic_events_count"`
	Neuro             string        `json:"neuro"`
}

// KnowledgeGraph carries the segmented text and processing metadata.
type KnowledgeGraph struct {
	Segments           []Segment `json:"segments"`
	TextLength         int       `json:"text_length"`
	ProcessingStrategy Strategy  `json:"processing_strategy"`
}

// ImmersionResult is the combined response for one narrative text.
// Constructed once per request; never shared across requests.
type ImmersionResult struct {
	AuditoryOutput AuditoryOutput `json:"auditory_output"`
	SensoryOutput  SensoryOutput  `json:"sensory_output"`
	KnowledgeGraph KnowledgeGraph `json:"knowledge_graph"`
}

// TextAnalysis summarizes segmentation for the full-immersion response.
type TextAnalysis struct {
	Segments      []Segment `json:"segments"`
	TotalSegments int       `json:"total_segments"`
	Strategy      Strategy  `json:"strategy"`
}

// FullImmersionResult is the emotion-informed, all-senses response: haptics
// are driven by the detected emotion and the visual/scent mappers are biased
// by it.
type FullImmersionResult struct {
	TextAnalysis    TextAnalysis   `json:"text_analysis"`
	EmotionAnalysis EmotionProfile `json:"emotion_analysis"`
	AuditoryOutput  AuditoryOutput `json:"auditory_output"`
	SensoryOutput   SensoryOutput  `json:"sensory_output"`
	VisualOutput    VisualConcepts `json:"visual_output"`
	OlfactoryOutput ScentProfile   `json:"olfactory_output"`
}
