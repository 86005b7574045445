package config

import (
	"errors"
	"fmt"
	"sort"
)

var errUnknownPreset = errors.New("unknown difficulty preset")

// PresetNames returns the configured preset names, sorted by grid size.
func (d DifficultyConfig) PresetNames() []string {
	names := make([]string, 0, len(d.Presets))
	for name := range d.Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := d.Presets[names[i]], d.Presets[names[j]]
		if pi.Size != pj.Size {
			return pi.Size < pj.Size
		}
		return names[i] < names[j]
	})
	return names
}

// Preset returns the named preset, or the default preset when name is empty.
// Size and density are clamped to playable values.
func (d DifficultyConfig) Preset(name string) (Preset, error) {
	if name == "" {
		name = d.Default
	}
	p, ok := d.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w %q", errUnknownPreset, name)
	}
	if p.Size < 1 {
		p.Size = 1
	}
	p.Density = clampF(p.Density, 0.0, 1.0)
	return p, nil
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
