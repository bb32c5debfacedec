// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/immersion-engine/internal/tts"
)

var speakCmd = &cobra.Command{
	Use:   "speak [text]",
	Short: "Synthesize speech for text",
	Long: `Speak converts text to speech and writes the audio bytes to the file
given with --out (or stdout). ElevenLabs is used when an API key is
configured; otherwise synthesis falls back to the local espeak-ng binary.
Synthesized audio is cached so repeated runs do not re-hit the vendor API.`,
	RunE: runSpeak,
}

func runSpeak(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	lang, _ := cmd.Flags().GetString("lang")
	if lang == "" {
		lang = cfg.TTS.DefaultLanguage
	}

	var cache *tts.Cache
	if cfg.TTS.CacheDir != "" {
		cache, err = tts.OpenCache(cfg.TTS.CacheDir)
		if err != nil {
			return fmt.Errorf("opening tts cache: %w", err)
		}
		defer cache.Close()
	}

	speech := tts.NewSynthesizer(tts.NewElevenLabs(cfg.TTS), tts.NewESpeak(cfg.TTS.FallbackCommand), cfg.TTS, cache)
	audio, engine, err := speech.Synthesize(context.Background(), text, lang)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" || out == "-" {
		_, err = os.Stdout.Write(audio)
		return err
	}
	if err := os.WriteFile(out, audio, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %d bytes to %s (engine: %s)\n", len(audio), out, engine)
	return nil
}

func init() {
	speakCmd.Flags().String("lang", "", "language code (default from config)")
	speakCmd.Flags().String("out", "", "output file (default stdout)")

	rootCmd.AddCommand(speakCmd)
}
