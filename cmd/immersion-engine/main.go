// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the immersion-engine CLI.
// Each pipeline stage is a subcommand: segment, emotion, haptics, speak,
// and patterns; serve exposes the full pipeline over HTTP.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/immersion-engine/internal/secrets"
	"github.com/pdiddy/immersion-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the immersion-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "immersion-engine",
	Short: "Multi-sensory immersion generation for narrative text",
	Long: `immersion-engine turns narrative text into synchronized multi-sensory
signals: segmented text, an emotion profile, a haptic vibration timeline,
synthesized speech, and visual/scent concept descriptors.

Each pipeline stage is a subcommand: segment, emotion, haptics, speak, and
patterns. The serve subcommand exposes the assembled pipeline over HTTP for
the reading client.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./immersion-engine.yaml or ~/.config/immersion-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("immersion-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "immersion-engine"))
		}
	}

	viper.SetEnvPrefix("IMMERSION_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig builds the engine configuration: built-in defaults overridden
// by config-file/env values, with the TTS API key filled from .secrets/.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()

	if viper.IsSet("server.host") {
		cfg.Server.Host = viper.GetString("server.host")
	}
	if viper.IsSet("server.port") {
		cfg.Server.Port = viper.GetInt("server.port")
	}
	if viper.IsSet("server.cors_origins") {
		cfg.Server.CORSOrigins = viper.GetStringSlice("server.cors_origins")
	}
	if viper.IsSet("segmentation.max_chunk_size") {
		cfg.Segmentation.MaxChunkSize = viper.GetInt("segmentation.max_chunk_size")
	}
	if viper.IsSet("segmentation.default_strategy") {
		cfg.Segmentation.DefaultStrategy = types.Strategy(viper.GetString("segmentation.default_strategy"))
	}
	if viper.IsSet("tts.voice_id") {
		cfg.TTS.VoiceID = viper.GetString("tts.voice_id")
	}
	if viper.IsSet("tts.model_id") {
		cfg.TTS.ModelID = viper.GetString("tts.model_id")
	}
	if viper.IsSet("tts.default_language") {
		cfg.TTS.DefaultLanguage = viper.GetString("tts.default_language")
	}
	if viper.IsSet("tts.attempt_timeout") {
		cfg.TTS.AttemptTimeout = viper.GetDuration("tts.attempt_timeout")
	}
	if viper.IsSet("tts.fallback_command") {
		cfg.TTS.FallbackCommand = viper.GetString("tts.fallback_command")
	}
	if viper.IsSet("tts.cache_dir") {
		cfg.TTS.CacheDir = viper.GetString("tts.cache_dir")
	}
	if viper.IsSet("haptics.default_intensity") {
		cfg.Haptics.DefaultIntensity = viper.GetFloat64("haptics.default_intensity")
	}
	if viper.IsSet("haptics.max_events_per_pattern") {
		cfg.Haptics.MaxEventsPerPattern = viper.GetInt("haptics.max_events_per_pattern")
	}
	if viper.IsSet("visual.default_style") {
		cfg.Visual.DefaultStyle = viper.GetString("visual.default_style")
	}
	if viper.IsSet("scent.default_intensity") {
		cfg.Scent.DefaultIntensity = viper.GetFloat64("scent.default_intensity")
	}

	cfg.TTS.APIKey = secretDefault(secrets.ElevenLabsKey, viper.GetString("tts.api_key"))
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
