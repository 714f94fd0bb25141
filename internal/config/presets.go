package config

import "sort"

// Preset is a known black hole with a measured (or representative) mass.
type Preset struct {
	Name        string
	MassSolar   float64
	Description string
}

// Presets are keyed by a short slug usable from the CLI.
var Presets = map[string]Preset{
	"stellar-min": {
		Name:        "Minimal stellar black hole",
		MassSolar:   3,
		Description: "lightest black hole a collapsing star can leave behind",
	},
	"cygnus-x1": {
		Name:        "Cygnus X-1",
		MassSolar:   21,
		Description: "first widely accepted black hole, X-ray binary",
	},
	"gw150914": {
		Name:        "GW150914",
		MassSolar:   36,
		Description: "heavier partner of the first detected merger",
	},
	"intermediate": {
		Name:        "Intermediate-mass black hole",
		MassSolar:   100,
		Description: "between stellar and supermassive regimes",
	},
	"sgr-a": {
		Name:        "Sagittarius A*",
		MassSolar:   4.3e6,
		Description: "supermassive black hole at the Milky Way's center",
	},
	"m87": {
		Name:        "M87*",
		MassSolar:   6.5e9,
		Description: "first black hole ever imaged",
	},
}

func GetPreset(slug string) (Preset, bool) {
	p, ok := Presets[slug]
	return p, ok
}

// ListPresets returns preset slugs ordered by ascending mass.
func ListPresets() []string {
	slugs := make([]string, 0, len(Presets))
	for slug := range Presets {
		slugs = append(slugs, slug)
	}
	sort.Slice(slugs, func(i, j int) bool {
		return Presets[slugs[i]].MassSolar < Presets[slugs[j]].MassSolar
	})
	return slugs
}
