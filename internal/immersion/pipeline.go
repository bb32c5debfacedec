// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package immersion assembles the per-sense generators into immersion
// responses. The orchestrator owns no state of its own; every request is
// segmented, analyzed, and rendered independently so concurrent requests
// never share mutable data.
package immersion

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/immersion-engine/internal/segment"
	"github.com/pdiddy/immersion-engine/pkg/types"
)

// defaultNeuro is the neuro cue emitted when no emotion steers it.
const defaultNeuro = "calm_alpha_wave"

// neuroWaves maps haptic emotion keys to neuro-feedback cues.
var neuroWaves = map[string]string{
	"happy":     "uplifting_beta_wave",
	"surprised": "alert_gamma_wave",
	"tense":     "grounding_theta_wave",
	"sad":       "soothing_delta_wave",
	"calm":      defaultNeuro,
}

// Analyzer scores text for emotional content.
type Analyzer interface {
	Analyze(text string, detailed bool) (types.EmotionProfile, error)
	ForHaptics(text string) (emotion string, intensity float64, err error)
}

// HapticSource renders haptic timelines from text or emotion input.
type HapticSource interface {
	FromText(text string) (types.HapticPattern, error)
	FromEmotion(emotion string, intensity float64) (types.HapticPattern, error)
}

// VoiceLister reports the voices the auditory adapter can speak with.
type VoiceLister interface {
	ListVoices(ctx context.Context) (types.VoiceList, error)
}

// VisualMapper renders visual concept descriptors for text.
type VisualMapper interface {
	Generate(text, style string) (types.VisualConcepts, error)
}

// ScentMapper renders scent profiles for text.
type ScentMapper interface {
	Generate(text string, intensity float64, emotion string) (types.ScentProfile, error)
}

// Orchestrator runs the immersion pipeline over injected components.
type Orchestrator struct {
	cfg      types.Config
	analyzer Analyzer
	haptics  HapticSource
	voices   VoiceLister
	visual   VisualMapper
	scents   ScentMapper
	log      *logrus.Logger
}

// New builds an orchestrator. A nil logger silences pipeline logging.
func New(cfg types.Config, analyzer Analyzer, haptics HapticSource, voices VoiceLister, visual VisualMapper, scents ScentMapper, log *logrus.Logger) *Orchestrator {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	return &Orchestrator{
		cfg:      cfg,
		analyzer: analyzer,
		haptics:  haptics,
		voices:   voices,
		visual:   visual,
		scents:   scents,
		log:      log,
	}
}

// GenerateImmersion runs the base pipeline: segment the text, render a
// text-driven haptic timeline, and list the available voices. The profile
// gates haptic and audio generation and fixes the language.
func (o *Orchestrator) GenerateImmersion(ctx context.Context, text string, profile *types.UserProfile) (types.ImmersionResult, error) {
	if strings.TrimSpace(text) == "" {
		return types.ImmersionResult{}, fmt.Errorf("%w: empty text", types.ErrInvalidInput)
	}

	strategy := o.cfg.Segmentation.DefaultStrategy
	segments, err := segment.Split(text, strategy, o.cfg.Segmentation.MaxChunkSize)
	if err != nil {
		return types.ImmersionResult{}, err
	}
	meta := segment.Metadata(text, segments, strategy)

	var (
		wg        sync.WaitGroup
		pattern   types.HapticPattern
		hapticErr error
		voiceList types.VoiceList
		voiceErr  error
	)
	if profile.HapticsEnabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pattern, hapticErr = o.haptics.FromText(text)
		}()
	}
	if profile.AudioEnabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			voiceList, voiceErr = o.voices.ListVoices(ctx)
		}()
	}
	wg.Wait()

	// Sub-call failures abort the request; report them in pipeline order.
	if hapticErr != nil {
		return types.ImmersionResult{}, fmt.Errorf("haptic generation: %w", hapticErr)
	}
	if voiceErr != nil {
		return types.ImmersionResult{}, fmt.Errorf("voice listing: %w", voiceErr)
	}

	lang := profile.Language(o.cfg.TTS.DefaultLanguage)
	result := types.ImmersionResult{
		AuditoryOutput: o.auditoryOutput(profile, voiceList, meta.TotalSegments, lang),
		SensoryOutput: types.SensoryOutput{
			HapticPattern:     pattern,
			HapticEventsCount: len(pattern.Events),
			Neuro:             defaultNeuro,
		},
		KnowledgeGraph: types.KnowledgeGraph{
			Segments:           segments,
			TextLength:         meta.TotalLength,
			ProcessingStrategy: meta.StrategyUsed,
		},
	}
	o.log.WithFields(logrus.Fields{
		"segments":      meta.TotalSegments,
		"haptic_events": result.SensoryOutput.HapticEventsCount,
		"language":      lang,
	}).Debug("immersion generated")
	return result, nil
}

// GenerateFullImmersion runs the emotion-informed pipeline: the text's
// emotion is analyzed first, haptics switch to emotion mode, and the visual
// and scent mappers are biased by the primary emotion.
func (o *Orchestrator) GenerateFullImmersion(ctx context.Context, text string, profile *types.UserProfile, visualStyle string, scentIntensity float64) (types.FullImmersionResult, error) {
	if strings.TrimSpace(text) == "" {
		return types.FullImmersionResult{}, fmt.Errorf("%w: empty text", types.ErrInvalidInput)
	}

	emotions, err := o.analyzer.Analyze(text, false)
	if err != nil {
		return types.FullImmersionResult{}, fmt.Errorf("emotion analysis: %w", err)
	}
	hapticEmotion, hapticIntensity, err := o.analyzer.ForHaptics(text)
	if err != nil {
		return types.FullImmersionResult{}, fmt.Errorf("emotion analysis: %w", err)
	}

	strategy := o.cfg.Segmentation.DefaultStrategy
	segments, err := segment.Split(text, strategy, o.cfg.Segmentation.MaxChunkSize)
	if err != nil {
		return types.FullImmersionResult{}, err
	}
	meta := segment.Metadata(text, segments, strategy)

	var (
		wg        sync.WaitGroup
		pattern   types.HapticPattern
		hapticErr error
		voiceList types.VoiceList
		voiceErr  error
		visuals   types.VisualConcepts
		visualErr error
		scents    types.ScentProfile
		scentErr  error
	)
	if profile.HapticsEnabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pattern, hapticErr = o.haptics.FromEmotion(hapticEmotion, hapticIntensity)
		}()
	}
	if profile.AudioEnabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			voiceList, voiceErr = o.voices.ListVoices(ctx)
		}()
	}
	wg.Add(2)
	go func() {
		defer wg.Done()
		visuals, visualErr = o.visual.Generate(text, visualStyle)
	}()
	go func() {
		defer wg.Done()
		scents, scentErr = o.scents.Generate(text, scentIntensity, emotions.PrimaryEmotion)
	}()
	wg.Wait()

	if hapticErr != nil {
		return types.FullImmersionResult{}, fmt.Errorf("haptic generation: %w", hapticErr)
	}
	if voiceErr != nil {
		return types.FullImmersionResult{}, fmt.Errorf("voice listing: %w", voiceErr)
	}
	if visualErr != nil {
		return types.FullImmersionResult{}, fmt.Errorf("visual generation: %w", visualErr)
	}
	if scentErr != nil {
		return types.FullImmersionResult{}, fmt.Errorf("scent generation: %w", scentErr)
	}

	neuro := defaultNeuro
	if profile.HapticsEnabled() {
		if wave, ok := neuroWaves[hapticEmotion]; ok {
			neuro = wave
		}
	}
	lang := profile.Language(o.cfg.TTS.DefaultLanguage)
	result := types.FullImmersionResult{
		TextAnalysis: types.TextAnalysis{
			Segments:      segments,
			TotalSegments: meta.TotalSegments,
			Strategy:      meta.StrategyUsed,
		},
		EmotionAnalysis: emotions,
		AuditoryOutput:  o.auditoryOutput(profile, voiceList, meta.TotalSegments, lang),
		SensoryOutput: types.SensoryOutput{
			HapticPattern:     pattern,
			HapticEventsCount: len(pattern.Events),
			Neuro:             neuro,
		},
		VisualOutput:    visuals,
		OlfactoryOutput: scents,
	}
	o.log.WithFields(logrus.Fields{
		"segments":       meta.TotalSegments,
		"primary":        emotions.PrimaryEmotion,
		"haptic_emotion": hapticEmotion,
		"neuro":          neuro,
	}).Debug("full immersion generated")
	return result, nil
}

func (o *Orchestrator) auditoryOutput(profile *types.UserProfile, voices types.VoiceList, segments int, lang string) types.AuditoryOutput {
	if !profile.AudioEnabled() {
		return types.AuditoryOutput{TTSEngine: "disabled", Segments: segments, Language: lang}
	}
	return types.AuditoryOutput{
		TTSEngine:       voices.Engine,
		Segments:        segments,
		Language:        lang,
		AvailableVoices: voices.Voices,
	}
}
