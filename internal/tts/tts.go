// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tts wraps text-to-speech capabilities behind a uniform Engine
// interface and provides the primary/fallback policy: ElevenLabs first,
// local eSpeak NG synthesis when the primary is unavailable.
package tts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/immersion-engine/pkg/types"
)

// Engine is one black-box speech synthesis capability.
type Engine interface {
	// Name identifies the engine in descriptors and logs.
	Name() string
	// Synthesize renders text in the given language to an audio byte
	// stream (MP3 for the primary engine, WAV for the local fallback).
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
	// Voices lists the voices the engine can speak with.
	Voices(ctx context.Context) ([]types.Voice, error)
}

// Synthesizer chains a primary and a fallback engine. Every attempt runs
// under its own timeout; the fallback is tried on any primary failure, and
// only when both engines fail does the caller see an error.
type Synthesizer struct {
	primary        Engine
	fallback       Engine
	attemptTimeout time.Duration
	defaultLang    string
	cache          *Cache
}

// NewSynthesizer wires the fallback chain. cache may be nil to disable
// audio caching.
func NewSynthesizer(primary, fallback Engine, cfg types.TTSConfig, cache *Cache) *Synthesizer {
	timeout := cfg.AttemptTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	lang := cfg.DefaultLanguage
	if lang == "" {
		lang = "en"
	}
	return &Synthesizer{
		primary:        primary,
		fallback:       fallback,
		attemptTimeout: timeout,
		defaultLang:    lang,
		cache:          cache,
	}
}

// Synthesize produces audio bytes for text, reporting which engine served
// the request. Results are cached by language and text, so repeated
// requests do not re-hit the paid API.
func (s *Synthesizer) Synthesize(ctx context.Context, text, lang string) (audio []byte, engine string, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, "", fmt.Errorf("%w: text must not be empty", types.ErrInvalidInput)
	}
	if lang == "" {
		lang = s.defaultLang
	}

	if audio, engine, ok := s.cache.Get(text, lang); ok {
		return audio, engine, nil
	}

	audio, primaryErr := s.attempt(ctx, s.primary, text, lang)
	if primaryErr == nil {
		s.cache.Put(text, lang, s.primary.Name(), audio)
		return audio, s.primary.Name(), nil
	}
	if ctx.Err() != nil {
		return nil, "", ctx.Err()
	}

	audio, fallbackErr := s.attempt(ctx, s.fallback, text, lang)
	if fallbackErr == nil {
		s.cache.Put(text, lang, s.fallback.Name(), audio)
		return audio, s.fallback.Name(), nil
	}

	return nil, "", fmt.Errorf("%w: %s: %v; %s: %v",
		types.ErrUpstreamUnavailable, s.primary.Name(), primaryErr, s.fallback.Name(), fallbackErr)
}

func (s *Synthesizer) attempt(ctx context.Context, engine Engine, text, lang string) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
	defer cancel()
	return engine.Synthesize(attemptCtx, text, lang)
}

// ListVoices reports the available voices. Fallback is true when the
// primary engine could not serve the listing.
func (s *Synthesizer) ListVoices(ctx context.Context) (types.VoiceList, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
	voices, primaryErr := s.primary.Voices(attemptCtx)
	cancel()
	if primaryErr == nil {
		return types.VoiceList{Voices: voices, Engine: s.primary.Name()}, nil
	}
	if ctx.Err() != nil {
		return types.VoiceList{}, ctx.Err()
	}

	attemptCtx, cancel = context.WithTimeout(ctx, s.attemptTimeout)
	voices, fallbackErr := s.fallback.Voices(attemptCtx)
	cancel()
	if fallbackErr == nil {
		return types.VoiceList{Voices: voices, Engine: s.fallback.Name(), Fallback: true}, nil
	}

	return types.VoiceList{}, fmt.Errorf("%w: %s: %v; %s: %v",
		types.ErrUpstreamUnavailable, s.primary.Name(), primaryErr, s.fallback.Name(), fallbackErr)
}
