// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/immersion-engine/internal/emotion"
	"github.com/pdiddy/immersion-engine/internal/haptics"
	"github.com/pdiddy/immersion-engine/internal/immersion"
	"github.com/pdiddy/immersion-engine/internal/scent"
	"github.com/pdiddy/immersion-engine/internal/visual"
	"github.com/pdiddy/immersion-engine/pkg/types"
)

type stubVoices struct{}

func (stubVoices) ListVoices(ctx context.Context) (types.VoiceList, error) {
	return types.VoiceList{
		Voices: []types.Voice{{ID: "v1", Name: "Rachel", Language: "en"}},
		Engine: "elevenlabs",
	}, nil
}

type stubSpeaker struct {
	audio  []byte
	engine string
	err    error
}

func (s stubSpeaker) Synthesize(ctx context.Context, text, lang string) ([]byte, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.audio, s.engine, nil
}

func newTestServer(t *testing.T, speech Speaker) *Server {
	t.Helper()
	cfg := types.DefaultConfig()
	analyzer := emotion.NewAnalyzer()
	engine := haptics.NewEngine(cfg.Haptics)
	visualMapper := visual.NewMapper(cfg.Visual)
	scentMapper := scent.NewMapper(cfg.Scent)
	orch := immersion.New(cfg, analyzer, engine, stubVoices{}, visualMapper, scentMapper, nil)
	if speech == nil {
		speech = stubSpeaker{audio: []byte("mp3-bytes"), engine: "elevenlabs"}
	}
	return New(cfg, Deps{
		Orchestrator: orch,
		Analyzer:     analyzer,
		Haptics:      engine,
		Speech:       speech,
		Visual:       visualMapper,
		Scents:       scentMapper,
	}, "test", nil)
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoot(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "immersion-engine", body["service"])
	assert.Equal(t, "test", body["version"])
}

func TestGenerateImmersion(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodPost, "/generate_immersion",
		`{"text": "The adventure begins! Are you ready?"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.ImmersionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.KnowledgeGraph.Segments, 2)
	assert.Equal(t, 2, result.AuditoryOutput.Segments)
	assert.Equal(t, 2, result.SensoryOutput.HapticEventsCount)
	assert.Equal(t, "calm_alpha_wave", result.SensoryOutput.Neuro)
	assert.Equal(t, "elevenlabs", result.AuditoryOutput.TTSEngine)
}

func TestGenerateImmersionProfileGating(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodPost, "/generate_immersion",
		`{"text": "Boom! Crash!", "user_profile": {"accessibility": {"haptic_enabled": false}}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.ImmersionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Zero(t, result.SensoryOutput.HapticEventsCount)
}

func TestGenerateImmersionEmptyText(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodPost, "/generate_immersion", `{"text": "   "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Error)
}

func TestMalformedJSON(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodPost, "/generate_immersion", `{"text": `)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerateFullImmersion(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodPost, "/generate_full_immersion",
		`{"text": "A happy, wonderful day in the garden!", "visual_style": "artistic", "scent_intensity": 0.8}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.FullImmersionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "joy", result.EmotionAnalysis.PrimaryEmotion)
	assert.Equal(t, "artistic", result.VisualOutput.Style.Name)
	assert.NotEmpty(t, result.OlfactoryOutput.PrimaryScent.Name)
	assert.NotZero(t, result.SensoryOutput.HapticEventsCount)
}

func TestSegmentText(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodPost, "/segment_text",
		`{"text": "One. Two. Three.", "strategy": "sentences"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.SegmentationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 3, result.TotalSegments)
	assert.Equal(t, types.StrategySentences, result.StrategyUsed)
}

func TestSegmentTextUnknownStrategy(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodPost, "/segment_text",
		`{"text": "One.", "strategy": "haiku"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTTS(t *testing.T) {
	h := newTestServer(t, stubSpeaker{audio: []byte("mp3-bytes"), engine: "elevenlabs"}).Handler()
	rec := doJSON(t, h, http.MethodPost, "/tts", `{"text": "Hello.", "lang": "en"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "elevenlabs", rec.Header().Get("X-TTS-Engine"))
	assert.True(t, bytes.Equal([]byte("mp3-bytes"), rec.Body.Bytes()))
}

func TestTTSUpstreamFailure(t *testing.T) {
	h := newTestServer(t, stubSpeaker{err: types.ErrUpstreamUnavailable}).Handler()
	rec := doJSON(t, h, http.MethodPost, "/tts", `{"text": "Hello."}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGenerateHaptics(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	t.Run("from text", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/generate_haptics", `{"text": "Go! Now!"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var pattern types.HapticPattern
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pattern))
		assert.Len(t, pattern.Events, 2)
	})

	t.Run("named pattern", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/generate_haptics", `{"pattern_name": "heartbeat"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var pattern types.HapticPattern
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pattern))
		assert.Equal(t, "heartbeat", pattern.Name)
		assert.True(t, pattern.Repeat)
	})

	t.Run("unknown pattern", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/generate_haptics", `{"pattern_name": "unknown"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no input", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/generate_haptics", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHapticPatterns(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodGet, "/haptic_patterns", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Patterns []string `json:"patterns"`
		Total    int      `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, len(body.Patterns), body.Total)
	assert.Contains(t, body.Patterns, "heartbeat")
}

func TestAnalyzeEmotion(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodPost, "/analyze_emotion",
		`{"text": "I am so happy and excited!", "detailed": true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile types.EmotionProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "joy", profile.PrimaryEmotion)
	require.NotNil(t, profile.Details)
}

func TestGenerateVisual(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodPost, "/generate_visual",
		`{"text": "A dark forest under the moon.", "style": "abstract"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var concepts types.VisualConcepts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &concepts))
	assert.Equal(t, "abstract", concepts.Style.Name)
	assert.NotEmpty(t, concepts.ColorPalette)
}

func TestGenerateScent(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodPost, "/generate_scent",
		`{"text": "Roses bloomed in the garden.", "intensity": 0.7}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile types.ScentProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.NotEmpty(t, profile.DetectedFamilies)
}

func TestCatalogEndpoints(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	rec := doJSON(t, h, http.MethodGet, "/visual_styles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stylesBody struct {
		Styles []types.StylePreset `json:"styles"`
		Total  int                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stylesBody))
	assert.Equal(t, 4, stylesBody.Total)

	rec = doJSON(t, h, http.MethodGet, "/scent_families", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var familiesBody struct {
		Families []types.ScentFamilyInfo `json:"families"`
		Total    int                     `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &familiesBody))
	assert.Equal(t, 10, familiesBody.Total)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodGet, "/tts", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	rec := doJSON(t, h, http.MethodGet, "/haptic_patterns", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/haptic_patterns", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	req := httptest.NewRequest(http.MethodOptions, "/generate_immersion", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSUnknownOrigin(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	req := httptest.NewRequest(http.MethodGet, "/haptic_patterns", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
