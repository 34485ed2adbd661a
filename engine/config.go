package engine

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/lixenwraith/maestro/constants"
)

// Config is the performance configuration, loadable from YAML. Every
// field has a working default; a missing file is not an error.
type Config struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Source      string  `yaml:"source"`      // "cursor" or "socket"
	TrackerURL  string  `yaml:"tracker_url"` // websocket tracker address
	Scheme      string  `yaml:"scheme"`
	Persistence float64 `yaml:"persistence"`
}

// DefaultConfig returns the stock setup: cursor-driven, aurora scheme
func DefaultConfig() *Config {
	return &Config{
		Width:       constants.CanvasWidth,
		Height:      constants.CanvasHeight,
		Source:      "cursor",
		TrackerURL:  "ws://localhost:9130/hands",
		Scheme:      "aurora",
		Persistence: constants.TrailPersistence,
	}
}

// LoadConfig reads path and overlays it onto the defaults. An absent
// file yields the defaults; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Width <= 0 {
		cfg.Width = constants.CanvasWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = constants.CanvasHeight
	}
	if cfg.Persistence <= 0 || cfg.Persistence > 1 {
		cfg.Persistence = constants.TrailPersistence
	}
	return cfg, nil
}
