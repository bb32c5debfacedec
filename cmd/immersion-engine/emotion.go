// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/immersion-engine/internal/emotion"
)

var emotionCmd = &cobra.Command{
	Use:   "emotion [text]",
	Short: "Analyze the emotional content of text",
	Long: `Emotion scores text against a fixed emotion taxonomy (joy, sadness,
anger, fear, surprise, disgust) and reports the primary emotion, per-emotion
scores, sentiment polarity/subjectivity, and an intensity estimate. English
and Chinese keywords are recognized.`,
	RunE: runEmotion,
}

func runEmotion(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}
	detailed, _ := cmd.Flags().GetBool("detailed")

	profile, err := emotion.NewAnalyzer().Analyze(text, detailed)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	}

	fmt.Printf("primary: %s (confidence %.3f, intensity %.3f)\n",
		profile.PrimaryEmotion, profile.Confidence, profile.Intensity)
	fmt.Printf("sentiment: polarity %.3f, subjectivity %.3f\n",
		profile.Sentiment.Polarity, profile.Sentiment.Subjectivity)
	for _, kind := range emotion.Taxonomy {
		if score := profile.Emotions[kind]; score > 0 {
			fmt.Printf("  %s: %.3f\n", kind, score)
		}
	}
	return nil
}

func init() {
	emotionCmd.Flags().Bool("detailed", false, "include keyword counts and analysis details")
	emotionCmd.Flags().Bool("json", false, "output result as JSON")

	rootCmd.AddCommand(emotionCmd)
}
