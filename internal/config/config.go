package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMass          = 10.0
	DefaultOrbits        = 4
	DefaultSpeed         = 1.0
	DefaultObjectHeight  = 2.0
	DefaultObserverHours = 1.0
	DefaultPoints        = 100
	DefaultDataDir       = ".gravwell"
)

type Config struct {
	MassSolar     float64   `yaml:"mass_solar"`
	NumOrbits     int       `yaml:"num_orbits"`
	Speed         float64   `yaml:"speed"`
	ObjectHeightM float64   `yaml:"object_height_m"`
	ObserverHours float64   `yaml:"observer_hours"`
	NumPoints     int       `yaml:"num_points"`
	DistancesRs   []float64 `yaml:"distances_rs"`
	DataDir       string    `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		MassSolar:     DefaultMass,
		NumOrbits:     DefaultOrbits,
		Speed:         DefaultSpeed,
		ObjectHeightM: DefaultObjectHeight,
		ObserverHours: DefaultObserverHours,
		NumPoints:     DefaultPoints,
		DistancesRs:   []float64{1.001, 1.1, 1.5, 2, 3, 5, 10, 100},
		DataDir:       DefaultDataDir,
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
