// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/immersion-engine/internal/emotion"
	"github.com/pdiddy/immersion-engine/internal/haptics"
	"github.com/pdiddy/immersion-engine/internal/immersion"
	"github.com/pdiddy/immersion-engine/internal/scent"
	"github.com/pdiddy/immersion-engine/internal/server"
	"github.com/pdiddy/immersion-engine/internal/tts"
	"github.com/pdiddy/immersion-engine/internal/visual"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the immersion pipeline over HTTP",
	Long: `Serve starts the HTTP server exposing the immersion endpoints consumed
by the reading client: /generate_immersion, /generate_full_immersion,
/segment_text, /tts, /generate_haptics, /analyze_emotion, /generate_visual,
and /generate_scent, plus the pattern/style/family catalogs.

Speech synthesis uses ElevenLabs when an API key is configured (via
.secrets/elevenlabs-api-key) and falls back to the local espeak-ng binary.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var cache *tts.Cache
	if cfg.TTS.CacheDir != "" {
		var err error
		cache, err = tts.OpenCache(cfg.TTS.CacheDir)
		if err != nil {
			return fmt.Errorf("opening tts cache: %w", err)
		}
		defer cache.Close()
	}

	speech := tts.NewSynthesizer(tts.NewElevenLabs(cfg.TTS), tts.NewESpeak(cfg.TTS.FallbackCommand), cfg.TTS, cache)
	analyzer := emotion.NewAnalyzer()
	engine := haptics.NewEngine(cfg.Haptics)
	visualMapper := visual.NewMapper(cfg.Visual)
	scentMapper := scent.NewMapper(cfg.Scent)
	orch := immersion.New(cfg, analyzer, engine, speech, visualMapper, scentMapper, log)

	srv := server.New(cfg, server.Deps{
		Orchestrator: orch,
		Analyzer:     analyzer,
		Haptics:      engine,
		Speech:       speech,
		Visual:       visualMapper,
		Scents:       scentMapper,
	}, version, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}

func init() {
	serveCmd.Flags().String("host", "", "listen address (default from config)")
	serveCmd.Flags().Int("port", 0, "listen port (default from config)")
	serveCmd.Flags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
}
