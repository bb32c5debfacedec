// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the immersion pipeline over HTTP. Handlers are
// thin: they decode a request, call one component, and encode the result
// or the mapped error envelope.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/immersion-engine/internal/haptics"
	"github.com/pdiddy/immersion-engine/internal/immersion"
	"github.com/pdiddy/immersion-engine/pkg/types"
)

// Immersive runs the assembled pipeline for one text.
type Immersive interface {
	GenerateImmersion(ctx context.Context, text string, profile *types.UserProfile) (types.ImmersionResult, error)
	GenerateFullImmersion(ctx context.Context, text string, profile *types.UserProfile, visualStyle string, scentIntensity float64) (types.FullImmersionResult, error)
}

// HapticGenerator renders one haptic pattern per request.
type HapticGenerator interface {
	Generate(req haptics.Request) (types.HapticPattern, error)
}

// Speaker synthesizes audio and reports the engine that produced it.
type Speaker interface {
	Synthesize(ctx context.Context, text, lang string) (audio []byte, engine string, err error)
}

// Deps collects the components the server routes to.
type Deps struct {
	Orchestrator Immersive
	Analyzer     immersion.Analyzer
	Haptics      HapticGenerator
	Speech       Speaker
	Visual       immersion.VisualMapper
	Scents       immersion.ScentMapper
}

// Server is the HTTP front of the immersion engine.
type Server struct {
	cfg     types.Config
	deps    Deps
	version string
	log     *logrus.Logger
}

// New builds a server. A nil logger silences request logging.
func New(cfg types.Config, deps Deps, version string, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	if version == "" {
		version = "dev"
	}
	return &Server{cfg: cfg, deps: deps, version: version, log: log}
}

// Handler returns the routed handler with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /generate_immersion", s.handleGenerateImmersion)
	mux.HandleFunc("POST /generate_full_immersion", s.handleGenerateFullImmersion)
	mux.HandleFunc("POST /segment_text", s.handleSegmentText)
	mux.HandleFunc("POST /tts", s.handleTTS)
	mux.HandleFunc("POST /generate_haptics", s.handleGenerateHaptics)
	mux.HandleFunc("GET /haptic_patterns", s.handleHapticPatterns)
	mux.HandleFunc("POST /analyze_emotion", s.handleAnalyzeEmotion)
	mux.HandleFunc("POST /generate_visual", s.handleGenerateVisual)
	mux.HandleFunc("POST /generate_scent", s.handleGenerateScent)
	mux.HandleFunc("GET /visual_styles", s.handleVisualStyles)
	mux.HandleFunc("GET /scent_families", s.handleScentFamilies)
	return s.withRequestID(s.withLogging(s.withCORS(mux)))
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", srv.Addr).Info("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("http server stopping")
	return srv.Shutdown(shutdownCtx)
}
