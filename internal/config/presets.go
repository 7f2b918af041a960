package config

import "sort"

// Presets are named starting states for the demo.
var Presets = map[string]*Config{
	"showcase": {
		Quality: "perfect", Device: "desktop", Era: "2026", ShowAnalytics: true,
	},
	"worst-case": {
		Quality: "none", Device: "mobile", Era: "2026", ShowAnalytics: true,
	},
	"mobile-fail": {
		Quality: "bad", Device: "mobile", Era: "2020", ShowAnalytics: true,
	},
	"retro": {
		Quality: "perfect", Device: "desktop", Era: "2010", ShowAnalytics: false,
	},
	"pitch": {
		Quality: "perfect", Device: "tablet", Era: "2026", Cinematic: true, SimulateUser: true,
	},
}

// GetPreset returns a copy of the named preset merged over the defaults, or
// nil if there is no such preset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Quality = p.Quality
	cfg.Device = p.Device
	cfg.Era = p.Era
	cfg.SimulateUser = p.SimulateUser
	cfg.Cinematic = p.Cinematic
	cfg.ShowAnalytics = p.ShowAnalytics
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
