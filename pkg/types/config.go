// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"net"
	"strconv"
	"time"
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "immersion-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Host is the listen address (default 127.0.0.1).
	Host string `json:"host" yaml:"host"`

	// Port is the listen port (default 8000).
	Port int `json:"port" yaml:"port"`

	// CORSOrigins lists the origins allowed by the CORS middleware.
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SegmentationConfig holds settings for the text segmenter.
type SegmentationConfig struct {
	// MaxChunkSize caps a merged sentence group under the adaptive strategy
	// (default 500 characters).
	MaxChunkSize int `json:"max_chunk_size" yaml:"max_chunk_size"`

	// DefaultStrategy is used when a request does not name one (default adaptive).
	DefaultStrategy Strategy `json:"default_strategy" yaml:"default_strategy"`
}

// TTSConfig holds settings for the auditory adapter.
type TTSConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates against the primary engine. Usually loaded from
	// .secrets/elevenlabs-api-key rather than the config file.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// VoiceID is the primary engine's default voice.
	VoiceID string `json:"voice_id" yaml:"voice_id"`

	// ModelID selects the primary engine's synthesis model.
	ModelID string `json:"model_id" yaml:"model_id"`

	// DefaultLanguage is used when a request does not carry one (default en).
	DefaultLanguage string `json:"default_language" yaml:"default_language"`

	// AttemptTimeout bounds one synthesis attempt before falling back
	// (default 10s).
	AttemptTimeout time.Duration `json:"attempt_timeout" yaml:"attempt_timeout"`

	// FallbackCommand is the local synthesis binary (default espeak-ng).
	FallbackCommand string `json:"fallback_command" yaml:"fallback_command"`

	// CacheDir is the directory for the synthesized-audio cache database.
	// Empty disables caching.
	CacheDir string `json:"cache_dir,omitempty" yaml:"cache_dir,omitempty"`
}

// HapticsConfig holds settings for the haptic pattern engine.
type HapticsConfig struct {
	// DefaultIntensity is used for emotion-driven generation when the
	// request does not carry one (default 0.5).
	DefaultIntensity float64 `json:"default_intensity" yaml:"default_intensity"`

	// MaxEventsPerPattern caps text-driven generation (default 100).
	MaxEventsPerPattern int `json:"max_events_per_pattern" yaml:"max_events_per_pattern"`
}

// VisualConfig holds settings for the visual concept mapper.
type VisualConfig struct {
	// DefaultStyle is used when a request does not name one (default realistic).
	DefaultStyle string `json:"default_style" yaml:"default_style"`

	// MaxConcepts caps the detected element categories (default 5).
	MaxConcepts int `json:"max_concepts" yaml:"max_concepts"`
}

// ScentConfig holds settings for the scent mapper.
type ScentConfig struct {
	// DefaultIntensity is the base intensity multiplier (default 0.5).
	DefaultIntensity float64 `json:"default_intensity" yaml:"default_intensity"`

	// MaxBlendComponents caps the blend recipe size (default 5).
	MaxBlendComponents int `json:"max_blend_components" yaml:"max_blend_components"`
}

// Config is the root configuration for the immersion engine.
type Config struct {
	Server       ServerConfig       `json:"server" yaml:"server"`
	Segmentation SegmentationConfig `json:"segmentation" yaml:"segmentation"`
	TTS          TTSConfig          `json:"tts" yaml:"tts"`
	Haptics      HapticsConfig      `json:"haptics" yaml:"haptics"`
	Visual       VisualConfig       `json:"visual" yaml:"visual"`
	Scent        ScentConfig        `json:"scent" yaml:"scent"`
}

// DefaultConfig returns the built-in defaults, matching the documented
// constants: max chunk size 500, primary-attempt timeout 10s, and the
// localhost server binding.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8000,
			CORSOrigins: []string{
				"http://localhost",
				"http://localhost:5173",
				"capacitor://localhost",
			},
		},
		Segmentation: SegmentationConfig{
			MaxChunkSize:    500,
			DefaultStrategy: StrategyAdaptive,
		},
		TTS: TTSConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "immersion-engine/0.1",
			},
			VoiceID:         "21m00Tcm4TlvDq8ikWAM",
			ModelID:         "eleven_multilingual_v2",
			DefaultLanguage: "en",
			AttemptTimeout:  10 * time.Second,
			FallbackCommand: "espeak-ng",
			CacheDir:        "cache/tts",
		},
		Haptics: HapticsConfig{
			DefaultIntensity:    0.5,
			MaxEventsPerPattern: 100,
		},
		Visual: VisualConfig{
			DefaultStyle: "realistic",
			MaxConcepts:  5,
		},
		Scent: ScentConfig{
			DefaultIntensity:   0.5,
			MaxBlendComponents: 5,
		},
	}
}
