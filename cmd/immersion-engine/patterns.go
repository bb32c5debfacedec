// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/immersion-engine/internal/haptics"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the predefined haptic patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := haptics.PatternNames()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"patterns": names, "total": len(names)})
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	patternsCmd.Flags().Bool("json", false, "output names as JSON")

	rootCmd.AddCommand(patternsCmd)
}
