// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pdiddy/immersion-engine/internal/haptics"
	"github.com/pdiddy/immersion-engine/internal/scent"
	"github.com/pdiddy/immersion-engine/internal/segment"
	"github.com/pdiddy/immersion-engine/internal/visual"
	"github.com/pdiddy/immersion-engine/pkg/types"
)

type errorEnvelope struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	writeJSON(w, status, errorEnvelope{Error: msg, Detail: detail})
}

// writeMappedError translates the component error taxonomy to HTTP status
// codes: invalid input and unknown names are client errors, upstream
// failures are server errors.
func writeMappedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrInvalidInput), errors.Is(err, types.ErrNotFound):
		writeError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, types.ErrUpstreamUnavailable):
		writeError(w, http.StatusInternalServerError, err.Error(), "")
	default:
		writeError(w, http.StatusInternalServerError, "internal error", err.Error())
	}
}

// decode reads the JSON body into v; malformed bodies are rejected with 422.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "malformed request body", err.Error())
		return false
	}
	return true
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "immersion engine is running",
		"service": "immersion-engine",
		"version": s.version,
	})
}

type immersionRequest struct {
	Text        string             `json:"text"`
	UserProfile *types.UserProfile `json:"user_profile,omitempty"`
}

func (s *Server) handleGenerateImmersion(w http.ResponseWriter, r *http.Request) {
	var req immersionRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := s.deps.Orchestrator.GenerateImmersion(r.Context(), req.Text, req.UserProfile)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type fullImmersionRequest struct {
	Text           string             `json:"text"`
	UserProfile    *types.UserProfile `json:"user_profile,omitempty"`
	VisualStyle    string             `json:"visual_style,omitempty"`
	ScentIntensity float64            `json:"scent_intensity,omitempty"`
}

func (s *Server) handleGenerateFullImmersion(w http.ResponseWriter, r *http.Request) {
	var req fullImmersionRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := s.deps.Orchestrator.GenerateFullImmersion(r.Context(), req.Text, req.UserProfile, req.VisualStyle, req.ScentIntensity)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type segmentRequest struct {
	Text     string         `json:"text"`
	Strategy types.Strategy `json:"strategy,omitempty"`
}

func (s *Server) handleSegmentText(w http.ResponseWriter, r *http.Request) {
	var req segmentRequest
	if !decode(w, r, &req) {
		return
	}
	strategy := req.Strategy
	if strategy == "" {
		strategy = s.cfg.Segmentation.DefaultStrategy
	}
	segments, err := segment.Split(req.Text, strategy, s.cfg.Segmentation.MaxChunkSize)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, segment.Metadata(req.Text, segments, strategy))
}

type ttsRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang,omitempty"`
}

func (s *Server) handleTTS(w http.ResponseWriter, r *http.Request) {
	var req ttsRequest
	if !decode(w, r, &req) {
		return
	}
	lang := req.Lang
	if lang == "" {
		lang = s.cfg.TTS.DefaultLanguage
	}
	audio, engine, err := s.deps.Speech.Synthesize(r.Context(), req.Text, lang)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("X-TTS-Engine", engine)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}

func (s *Server) handleGenerateHaptics(w http.ResponseWriter, r *http.Request) {
	var req haptics.Request
	if !decode(w, r, &req) {
		return
	}
	pattern, err := s.deps.Haptics.Generate(req)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pattern)
}

func (s *Server) handleHapticPatterns(w http.ResponseWriter, r *http.Request) {
	names := haptics.PatternNames()
	writeJSON(w, http.StatusOK, map[string]any{
		"patterns": names,
		"total":    len(names),
	})
}

type emotionRequest struct {
	Text     string `json:"text"`
	Detailed bool   `json:"detailed,omitempty"`
}

func (s *Server) handleAnalyzeEmotion(w http.ResponseWriter, r *http.Request) {
	var req emotionRequest
	if !decode(w, r, &req) {
		return
	}
	profile, err := s.deps.Analyzer.Analyze(req.Text, req.Detailed)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

type visualRequest struct {
	Text  string `json:"text"`
	Style string `json:"style,omitempty"`
}

func (s *Server) handleGenerateVisual(w http.ResponseWriter, r *http.Request) {
	var req visualRequest
	if !decode(w, r, &req) {
		return
	}
	concepts, err := s.deps.Visual.Generate(req.Text, req.Style)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, concepts)
}

type scentRequest struct {
	Text      string  `json:"text"`
	Intensity float64 `json:"intensity,omitempty"`
	Emotion   string  `json:"emotion,omitempty"`
}

func (s *Server) handleGenerateScent(w http.ResponseWriter, r *http.Request) {
	var req scentRequest
	if !decode(w, r, &req) {
		return
	}
	profile, err := s.deps.Scents.Generate(req.Text, req.Intensity, req.Emotion)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleVisualStyles(w http.ResponseWriter, r *http.Request) {
	styles := visual.Styles()
	writeJSON(w, http.StatusOK, map[string]any{
		"styles": styles,
		"total":  len(styles),
	})
}

func (s *Server) handleScentFamilies(w http.ResponseWriter, r *http.Request) {
	families := scent.Families()
	writeJSON(w, http.StatusOK, map[string]any{
		"families": families,
		"total":    len(families),
	})
}
