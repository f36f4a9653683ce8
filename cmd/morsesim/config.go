package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/itohio/morselight/config"
)

// Config is the simulator setup, read from YAML and overridden by flags.
type Config struct {
	Message  string  `yaml:"message"`
	Capacity int     `yaml:"capacity"`
	Speed    float64 `yaml:"speed"` // playback speed-up, 1 is real time
	Repeat   int     `yaml:"repeat"`
}

func defaultConfig() Config {
	return Config{
		Message:  config.DefaultMessage,
		Capacity: config.Capacity,
		Speed:    1,
		Repeat:   1,
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", c.Speed)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat must be at least 1, got %d", c.Repeat)
	}
	return nil
}
