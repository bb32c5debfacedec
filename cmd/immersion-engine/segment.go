// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/immersion-engine/internal/segment"
	"github.com/pdiddy/immersion-engine/pkg/types"
)

var segmentCmd = &cobra.Command{
	Use:   "segment [text]",
	Short: "Split narrative text into segments",
	Long: `Segment splits narrative text into ordered chunks under a chosen
strategy: sentences, paragraphs, or adaptive (sentence groups capped at the
configured chunk size). Text is taken from the argument or, when absent,
from stdin.`,
	RunE: runSegment,
}

func runSegment(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	strategy := cfg.Segmentation.DefaultStrategy
	if s, _ := cmd.Flags().GetString("strategy"); s != "" {
		strategy = types.Strategy(s)
	}

	segments, err := segment.Split(text, strategy, cfg.Segmentation.MaxChunkSize)
	if err != nil {
		return err
	}
	result := segment.Metadata(text, segments, strategy)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("%d segment(s), strategy %s, average length %.1f\n",
		result.TotalSegments, result.StrategyUsed, result.AverageLength)
	for _, seg := range result.Segments {
		fmt.Printf("  [%d] (%s, %d chars) %s\n", seg.Index, seg.Type, seg.Length, seg.Text)
	}
	return nil
}

// readText takes the input text from the arguments, or from stdin when no
// argument is given.
func readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	segmentCmd.Flags().String("strategy", "", "segmentation strategy: sentences, paragraphs, or adaptive")
	segmentCmd.Flags().Bool("json", false, "output result as JSON")

	rootCmd.AddCommand(segmentCmd)
}
