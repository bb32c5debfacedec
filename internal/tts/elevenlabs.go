// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/immersion-engine/internal/httputil"
	"github.com/pdiddy/immersion-engine/pkg/types"
)

const elevenLabsBaseURL = "https://api.elevenlabs.io"

// ElevenLabs is the primary engine: the ElevenLabs REST API. The
// multilingual model infers the language from the text, so the lang
// parameter only matters for the fallback engine.
type ElevenLabs struct {
	client  *http.Client
	cfg     types.TTSConfig
	baseURL string
}

// NewElevenLabs builds the primary engine client from config. The API key
// normally comes from .secrets/elevenlabs-api-key; with no key every call
// fails and the synthesizer falls back.
func NewElevenLabs(cfg types.TTSConfig) *ElevenLabs {
	return &ElevenLabs{
		client:  &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		baseURL: elevenLabsBaseURL,
	}
}

// Name implements Engine.
func (e *ElevenLabs) Name() string { return "elevenlabs" }

type synthesisRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id,omitempty"`
}

// Synthesize renders text through POST /v1/text-to-speech/{voice} and
// returns the MP3 bytes. Rate-limited requests retry with backoff.
func (e *ElevenLabs) Synthesize(ctx context.Context, text, _ string) ([]byte, error) {
	if e.cfg.APIKey == "" {
		return nil, fmt.Errorf("elevenlabs: no API key configured")
	}

	body, err := json.Marshal(synthesisRequest{Text: text, ModelID: e.cfg.ModelID})
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", e.baseURL, e.cfg.VoiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", e.cfg.APIKey)
	if e.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", e.cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, e.client, req, 2)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("elevenlabs: %s: %s", resp.Status, msg)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: reading audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("elevenlabs: empty audio response")
	}
	return audio, nil
}

type voicesResponse struct {
	Voices []struct {
		VoiceID string            `json:"voice_id"`
		Name    string            `json:"name"`
		Labels  map[string]string `json:"labels"`
	} `json:"voices"`
}

// Voices lists the account's voices through GET /v1/voices.
func (e *ElevenLabs) Voices(ctx context.Context) ([]types.Voice, error) {
	if e.cfg.APIKey == "" {
		return nil, fmt.Errorf("elevenlabs: no API key configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/v1/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: building request: %w", err)
	}
	req.Header.Set("xi-api-key", e.cfg.APIKey)

	resp, err := httputil.DoWithRetry(ctx, e.client, req, 2)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("elevenlabs: %s: %s", resp.Status, msg)
	}

	var parsed voicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("elevenlabs: decoding voices: %w", err)
	}

	voices := make([]types.Voice, 0, len(parsed.Voices))
	for _, v := range parsed.Voices {
		voices = append(voices, types.Voice{
			ID:       v.VoiceID,
			Name:     v.Name,
			Language: v.Labels["language"],
		})
	}
	return voices, nil
}
