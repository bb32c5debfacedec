// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/immersion-engine/internal/haptics"
)

var hapticsCmd = &cobra.Command{
	Use:   "haptics [text]",
	Short: "Generate a haptic vibration pattern",
	Long: `Haptics synthesizes a timed vibration pattern from one of three
inputs: narrative text (punctuation-driven events), a named emotion with an
intensity, or a predefined pattern name. Exactly one input is used, in that
precedence order.`,
	RunE: runHaptics,
}

func runHaptics(cmd *cobra.Command, args []string) error {
	req := haptics.Request{}
	if len(args) > 0 {
		text, err := readText(args)
		if err != nil {
			return err
		}
		req.Text = text
	}
	req.Emotion, _ = cmd.Flags().GetString("emotion")
	req.PatternName, _ = cmd.Flags().GetString("pattern")
	if cmd.Flags().Changed("intensity") {
		intensity, _ := cmd.Flags().GetFloat64("intensity")
		req.Intensity = &intensity
	}

	cfg := loadConfig()
	pattern, err := haptics.NewEngine(cfg.Haptics).Generate(req)
	if err != nil {
		return err
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		out, err := yaml.Marshal(pattern)
		if err != nil {
			return fmt.Errorf("encoding pattern: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(pattern)
}

func init() {
	hapticsCmd.Flags().String("emotion", "", "emotion key: happy, excited, calm, sad, tense, or surprised")
	hapticsCmd.Flags().Float64("intensity", 0, "emotion intensity in [0, 1] (default from config)")
	hapticsCmd.Flags().String("pattern", "", "predefined pattern name (see the patterns subcommand)")
	hapticsCmd.Flags().Bool("yaml", false, "output the pattern as YAML instead of JSON")

	rootCmd.AddCommand(hapticsCmd)
}
