package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Preset patterns, keyed by name. Coordinates follow the classic layouts:
// each pattern sits near the origin and gets placed by the caller's offset.
var presets = map[string][]Position{
	"glider": {
		{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3},
	},
	"blinker": {
		{1, 1}, {1, 2}, {1, 3},
	},
	"toad": {
		{2, 2}, {2, 3}, {2, 4}, {3, 1}, {3, 2}, {3, 3},
	},
	"beacon": {
		{1, 1}, {1, 2}, {2, 1}, {3, 4}, {4, 3}, {4, 4},
	},
	"pulsar": {
		{2, 4}, {2, 5}, {2, 6}, {2, 10}, {2, 11}, {2, 12},
		{4, 2}, {4, 7}, {4, 9}, {4, 14},
		{5, 2}, {5, 7}, {5, 9}, {5, 14},
		{6, 2}, {6, 7}, {6, 9}, {6, 14},
		{7, 4}, {7, 5}, {7, 6}, {7, 10}, {7, 11}, {7, 12},
		{9, 4}, {9, 5}, {9, 6}, {9, 10}, {9, 11}, {9, 12},
		{10, 2}, {10, 7}, {10, 9}, {10, 14},
		{11, 2}, {11, 7}, {11, 9}, {11, 14},
		{12, 2}, {12, 7}, {12, 9}, {12, 14},
		{14, 4}, {14, 5}, {14, 6}, {14, 10}, {14, 11}, {14, 12},
	},
}

// PresetNames returns the available pattern names in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPattern returns a fresh generation seeded with the named preset at the
// given offset, every cell carrying default properties.
func LoadPattern(name string, offsetRow, offsetCol int) (Generation, error) {
	cells, ok := presets[name]
	if !ok {
		return nil, errors.Errorf("[LoadPattern] unknown pattern: %q", name)
	}

	g := make(Generation, len(cells))
	props := DefaultProperties()
	for _, p := range cells {
		g[Position{Row: p.Row + offsetRow, Col: p.Col + offsetCol}] = props
	}
	return g, nil
}
