// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tts

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/pdiddy/immersion-engine/pkg/types"
)

// ESpeak is the local fallback engine: it pipes text through the espeak-ng
// binary and captures the WAV stream it writes to stdout. No network, no
// quota, robotic but always available.
type ESpeak struct {
	command string
}

// NewESpeak returns the local engine. command defaults to espeak-ng.
func NewESpeak(command string) *ESpeak {
	if command == "" {
		command = "espeak-ng"
	}
	return &ESpeak{command: command}
}

// Name implements Engine.
func (e *ESpeak) Name() string { return "espeak" }

// Synthesize shells out to the speech binary with the language as the
// voice selector.
func (e *ESpeak) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if lang == "" {
		lang = "en"
	}

	var out, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.command, "-v", lang, "--stdout")
	cmd.Stdin = bytes.NewReader([]byte(text))
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("espeak: running %s: %w (%s)", e.command, err, bytes.TrimSpace(stderr.Bytes()))
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("espeak: produced no audio")
	}
	return out.Bytes(), nil
}

// Voices reports the fixed language voices the fallback supports; espeak
// itself has many more, these are the ones the reader client offers.
func (e *ESpeak) Voices(_ context.Context) ([]types.Voice, error) {
	return []types.Voice{
		{ID: "en", Name: "English", Language: "en"},
		{ID: "zh", Name: "Mandarin", Language: "zh"},
		{ID: "zh-yue", Name: "Cantonese", Language: "zh-yue"},
		{ID: "ja", Name: "Japanese", Language: "ja"},
		{ID: "fr", Name: "French", Language: "fr"},
		{ID: "de", Name: "German", Language: "de"},
	}, nil
}
