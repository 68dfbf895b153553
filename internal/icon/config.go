package icon

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/couchcryptid/surf-spot-etl/internal/geometry"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const maxRingCount = 8

// Config holds the icon dimensions and colours. It is passed by value into
// every rendering call; nothing in this package keeps a copy.
type Config struct {
	Size             float64 `yaml:"size" toml:"size" json:"size"`
	Padding          float64 `yaml:"padding" toml:"padding" json:"padding"`
	StrokeWidth      float64 `yaml:"stroke_width" toml:"stroke_width" json:"stroke_width"`
	RingCount        int     `yaml:"ring_count" toml:"ring_count" json:"ring_count"`
	LabelRadiusRatio float64 `yaml:"label_radius_ratio" toml:"label_radius_ratio" json:"label_radius_ratio"`

	SwellColor    string `yaml:"swell_color" toml:"swell_color" json:"swell_color"`
	WindColor     string `yaml:"wind_color" toml:"wind_color" json:"wind_color"`
	RingColor     string `yaml:"ring_color" toml:"ring_color" json:"ring_color"`
	SelectorColor string `yaml:"selector_color" toml:"selector_color" json:"selector_color"`
}

// DefaultConfig returns the condition icon used on spot cards: a 42px square
// with a 20px radius circle centred at (21, 21).
func DefaultConfig() Config {
	return Config{
		Size:             42,
		Padding:          1,
		StrokeWidth:      1,
		RingCount:        4,
		LabelRadiusRatio: 0.75,
		SwellColor:       "#1d4ed8",
		WindColor:        "#0f766e",
		RingColor:        "#cbd5e1",
		SelectorColor:    "#94a3b8",
	}
}

// Center returns the centre of the icon's drawing plane.
func (c Config) Center() geometry.Point {
	return geometry.Point{X: c.Size / 2, Y: c.Size / 2}
}

// Radius returns the radius of the outermost ring.
func (c Config) Radius() float64 {
	return c.Size/2 - c.Padding
}

// Validate checks dimensions and colours.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return errors.New("icon size must be positive")
	}
	if c.Padding < 0 || c.Radius() <= 0 {
		return fmt.Errorf("icon padding %v leaves no room for a %v icon", c.Padding, c.Size)
	}
	if c.StrokeWidth < 0 {
		return errors.New("icon stroke_width must not be negative")
	}
	if c.RingCount < 1 || c.RingCount > maxRingCount {
		return fmt.Errorf("icon ring_count must be between 1 and %d", maxRingCount)
	}
	if c.LabelRadiusRatio <= 0 || c.LabelRadiusRatio > 1 {
		return errors.New("icon label_radius_ratio must be in (0, 1]")
	}
	for name, value := range c.colors() {
		if _, err := colorful.Hex(value); err != nil {
			return fmt.Errorf("icon %s %q: %w", name, value, err)
		}
	}
	return nil
}

func (c Config) colors() map[string]string {
	return map[string]string{
		"swell_color":    c.SwellColor,
		"wind_color":     c.WindColor,
		"ring_color":     c.RingColor,
		"selector_color": c.SelectorColor,
	}
}

// normalized rewrites every colour as lowercase #rrggbb. Call after Validate.
func (c Config) normalized() Config {
	c.SwellColor = normalizeColor(c.SwellColor)
	c.WindColor = normalizeColor(c.WindColor)
	c.RingColor = normalizeColor(c.RingColor)
	c.SelectorColor = normalizeColor(c.SelectorColor)
	return c
}

func normalizeColor(hex string) string {
	col, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return col.Hex()
}

// LoadConfig reads an icon configuration file over the defaults. The format is
// chosen by extension (.yaml, .yml or .toml). An empty path yields the
// defaults.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("read icon config: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode icon config %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode icon config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported icon config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid icon config %s: %w", path, err)
	}
	return cfg.normalized(), nil
}
