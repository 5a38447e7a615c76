package config

var Presets = map[string]*Config{
	"collision": {
		Galaxies: 2, Steps: 3000,
		Generator: GeneratorConfig{
			MinStars: 1500, MinRadius: 1, MaxInitialSpeed: 4,
			RewindTimeSteps: 3, CollisionAvoidanceOffset: 1.5,
		},
	},
	"cluster": {
		Galaxies: 4, Steps: 5000,
		Generator: GeneratorConfig{
			MinStars: 600, MaxStars: 1200, MinRadius: 0.6, MaxRadius: 1.4,
			MaxInitialSpeed: 2, RewindTimeSteps: 3, CollisionAvoidanceOffset: 2.5,
		},
	},
	"flyby": {
		Galaxies: 2, Steps: 4000,
		Generator: GeneratorConfig{
			MinStars: 2000, MinRadius: 1.5, MaxInitialSpeed: 6,
			RewindTimeSteps: 4, CollisionAvoidanceOffset: 3,
		},
	},
	"sparse": {
		Galaxies: 3, Steps: 2000, ResetEvery: 1000,
		Generator: GeneratorConfig{
			MinStars: 300, MinRadius: 1, MaxInitialSpeed: 4,
			RewindTimeSteps: 3, CollisionAvoidanceOffset: 1.5,
		},
	},
}

// GetPreset returns a copy of the named preset with unset physics fields
// filled from the defaults, or nil if the name is unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	base := DefaultConfig()
	if cfg.Dt == 0 {
		cfg.Dt = base.Dt
	}
	if cfg.G == 0 {
		cfg.G = base.G
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
