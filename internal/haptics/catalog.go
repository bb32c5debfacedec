// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package haptics

import (
	_ "embed"
	"fmt"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/immersion-engine/pkg/types"
)

//go:embed catalog.yaml
var catalogYAML []byte

// catalog holds the fixed named patterns, loaded once at startup and never
// mutated afterwards; read-only sharing across requests is safe.
var catalog = loadCatalog()

func loadCatalog() map[string]types.HapticPattern {
	var patterns []types.HapticPattern
	if err := yaml.Unmarshal(catalogYAML, &patterns); err != nil {
		panic(fmt.Sprintf("haptics: embedded catalog is malformed: %v", err))
	}
	m := make(map[string]types.HapticPattern, len(patterns))
	for _, p := range patterns {
		if err := p.Validate(); err != nil {
			panic(fmt.Sprintf("haptics: embedded catalog: %v", err))
		}
		m[p.Name] = p
	}
	return m
}

// PatternNames returns the catalog names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
