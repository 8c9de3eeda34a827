package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Container: DefaultContainer, SortType: "bubble-sort", Children: 50, MaxValue: 100, Theme: "cyberpunk", Speed: 1,
		Pacing: PacingConfig{FrameMs: 16, SwapMs: 100, CompareMs: 250, ScanMs: 100, FlourishMs: 250},
	},
	"brisk": {
		Container: DefaultContainer, SortType: "bubble-sort", Children: 50, MaxValue: 100, Theme: "ocean", Speed: 1,
		Pacing: PacingConfig{FrameMs: 16, SwapMs: 100, CompareMs: 100, ScanMs: 100, FlourishMs: 75},
	},
	"slow": {
		Container: DefaultContainer, SortType: "quick-sort", Children: 30, MaxValue: 100, Theme: "sunset", Speed: 1,
		Pacing: PacingConfig{FrameMs: 16, SwapMs: 200, CompareMs: 250, ScanMs: 200, FlourishMs: 250},
	},
	"instant": {
		Container: DefaultContainer, SortType: "quick-sort", Children: 50, MaxValue: 100, Theme: "minimal", Speed: 0,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
