package config

import (
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kws/galaxy/internal/gen"
	"github.com/kws/galaxy/internal/physics"
)

const (
	DefaultGalaxies = 2
	DefaultSteps    = 2000
)

type Config struct {
	Galaxies   int             `yaml:"galaxies"`
	Steps      int             `yaml:"steps"`
	Seed       int64           `yaml:"seed"`
	Dt         float64         `yaml:"dt"`
	G          float64         `yaml:"g"`
	ResetEvery int             `yaml:"reset_every"`
	Generator  GeneratorConfig `yaml:"generator"`
}

type GeneratorConfig struct {
	MinStars                 int     `yaml:"min_stars"`
	MaxStars                 int     `yaml:"max_stars"`
	MinRadius                float64 `yaml:"min_radius"`
	MaxRadius                float64 `yaml:"max_radius"`
	MaxInitialSpeed          float64 `yaml:"max_initial_speed"`
	RewindTimeSteps          float64 `yaml:"rewind_time_steps"`
	CollisionAvoidanceOffset float64 `yaml:"collision_avoidance_offset"`
}

func DefaultConfig() *Config {
	return &Config{
		Galaxies: DefaultGalaxies,
		Steps:    DefaultSteps,
		Dt:       physics.DefaultDt,
		G:        physics.DefaultG,
		Generator: GeneratorConfig{
			MinStars:                 gen.DefaultMinStarCount,
			MinRadius:                gen.DefaultMinGalaxyRadius,
			MaxInitialSpeed:          gen.DefaultMaxInitialSpeed,
			RewindTimeSteps:          gen.DefaultRewindTimeSteps,
			CollisionAvoidanceOffset: gen.DefaultCollisionAvoidanceOffset,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Integrator builds the integrator this config describes.
func (c *Config) Integrator() *physics.Integrator {
	in := physics.NewIntegrator()
	if c.Dt > 0 {
		in.Dt = c.Dt
	}
	if c.G > 0 {
		in.G = c.G
	}
	return in
}

// GenOptions maps the generator section onto gen.Options. The caller
// supplies the entropy source so one seeded rand drives a whole run.
func (c *Config) GenOptions(rng *rand.Rand) gen.Options {
	return gen.Options{
		MinStarCount:                    c.Generator.MinStars,
		MaxStarCount:                    c.Generator.MaxStars,
		MinGalaxyRadius:                 c.Generator.MinRadius,
		MaxGalaxyRadius:                 c.Generator.MaxRadius,
		MaxInitialSpeed:                 c.Generator.MaxInitialSpeed,
		RewindTimeSteps:                 c.Generator.RewindTimeSteps,
		InitialCollisionAvoidanceOffset: c.Generator.CollisionAvoidanceOffset,
		Rand:                            rng,
	}
}
