package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/cardfit/internal/debug"
	"github.com/dkoosis/cardfit/pkg/card"
	"github.com/dkoosis/cardfit/pkg/measure"
)

// FileName is the config file looked up in the working directory and in the
// user config directory.
const FileName = ".cardfit.yaml"

// Constants for default values.
const (
	DefaultCellWidth  = 8.0
	DefaultLineHeight = measure.DefaultLineHeight
	DefaultCardWidth  = 40
	DefaultIndicator  = 10
	DefaultDemoText   = "Drinking water isn't just about quenching your thirst. " +
		"It plays a crucial role in maintaining the proper functioning of your body."
)

// Metrics maps terminal cells to layout units.
type Metrics struct {
	CellWidth  float64 `yaml:"cell_width"`
	LineHeight float64 `yaml:"line_height"`
}

// BadgeConfig configures the collision test.
type BadgeConfig struct {
	Margin float64 `yaml:"margin"`
}

// CardConfig configures card geometry.
type CardConfig struct {
	Width int `yaml:"width"` // cells
}

// DemoCopies is how many cards of each kind the gallery shows.
type DemoCopies struct {
	Text            int `yaml:"text"`
	TextImage       int `yaml:"text_image"`
	Picture         int `yaml:"picture"`
	PictureReversed int `yaml:"picture_reversed"`
}

// For returns the count for a kind.
func (c DemoCopies) For(k card.Kind) int {
	switch k {
	case card.TextImage:
		return c.TextImage
	case card.Picture:
		return c.Picture
	case card.PictureReversed:
		return c.PictureReversed
	default:
		return c.Text
	}
}

// DemoConfig is the gallery content.
type DemoConfig struct {
	Text      string     `yaml:"text"`
	ImageText string     `yaml:"image_text"`
	Indicator *int       `yaml:"indicator"`
	Compact   bool       `yaml:"compact"`
	Copies    DemoCopies `yaml:"copies"`
}

// AppConfig represents the application's configuration from .cardfit.yaml.
type AppConfig struct {
	Metrics    Metrics            `yaml:"metrics"`
	Badge      BadgeConfig        `yaml:"badge"`
	Thresholds measure.Thresholds `yaml:"thresholds"`
	Theme      *card.Theme        `yaml:"theme"`
	Card       CardConfig         `yaml:"card"`
	Demo       DemoConfig         `yaml:"demo"`
	NoColor    bool               `yaml:"no_color"`
	Debug      bool               `yaml:"debug"`
}

// Default returns the hardcoded configuration.
func Default() *AppConfig {
	return &AppConfig{
		Metrics:    Metrics{CellWidth: DefaultCellWidth, LineHeight: DefaultLineHeight},
		Badge:      BadgeConfig{Margin: measure.DefaultBadgeMargin},
		Thresholds: measure.DefaultThresholds(),
		Theme:      card.DefaultTheme(),
		Card:       CardConfig{Width: DefaultCardWidth},
		Demo: DemoConfig{
			Text:      DefaultDemoText,
			ImageText: DefaultDemoText,
			Indicator: card.Indicator(DefaultIndicator),
			Copies:    DemoCopies{Text: 4, TextImage: 4, Picture: 1, PictureReversed: 1},
		},
	}
}

// Load reads the config file, if any, over the defaults. A file that cannot
// be read or parsed yields the defaults together with the error, so callers
// can warn and carry on.
func Load() (*AppConfig, error) {
	path := getConfigPath()
	if path == "" {
		debug.Logf("config", "no %s found, using defaults", FileName)
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults.
func LoadFile(path string) (*AppConfig, error) {
	cfg := Default()
	// #nosec G304 -- path is the user's own config file
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	var fromFile AppConfig
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.merge(&fromFile)
	debug.Logf("config", "loaded %s", path)
	return cfg, nil
}

// merge copies every field set in src over c.
func (c *AppConfig) merge(src *AppConfig) {
	if src.Metrics.CellWidth > 0 {
		c.Metrics.CellWidth = src.Metrics.CellWidth
	}
	if src.Metrics.LineHeight > 0 {
		c.Metrics.LineHeight = src.Metrics.LineHeight
	}
	if src.Badge.Margin > 0 {
		c.Badge.Margin = src.Badge.Margin
	}
	c.Thresholds = src.Thresholds.WithDefaults()
	if src.Theme != nil {
		c.Theme = src.Theme.MergeDefaults()
	}
	if src.Card.Width > 0 {
		c.Card.Width = src.Card.Width
	}
	if src.Demo.Text != "" {
		c.Demo.Text = src.Demo.Text
	}
	if src.Demo.ImageText != "" {
		c.Demo.ImageText = src.Demo.ImageText
	}
	if src.Demo.Indicator != nil {
		c.Demo.Indicator = card.Indicator(card.ClampIndicator(*src.Demo.Indicator))
	}
	c.Demo.Compact = src.Demo.Compact
	mergeCopies(&c.Demo.Copies, src.Demo.Copies)
	c.NoColor = src.NoColor
	c.Debug = src.Debug
}

func mergeCopies(dst *DemoCopies, src DemoCopies) {
	set := func(d *int, v int) {
		if v > 0 {
			*d = v
		}
	}
	set(&dst.Text, src.Text)
	set(&dst.TextImage, src.TextImage)
	set(&dst.Picture, src.Picture)
	set(&dst.PictureReversed, src.PictureReversed)
}

// getConfigPath finds the config file: the working directory first, then the
// user config directory.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		if debug.Enabled() {
			abs, _ := filepath.Abs(FileName)
			debug.Logf("config", "using local config file: %s", abs)
		}
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		debug.Logf("config", "user config dir unusable: err=%v path=%q", err, configHome)
		return ""
	}
	xdgPath := filepath.Join(configHome, "cardfit", FileName)
	if _, err := os.Stat(xdgPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			debug.Logf("config", "cannot stat %s: %v", xdgPath, err)
		}
		return ""
	}
	debug.Logf("config", "using user config file: %s", xdgPath)
	return xdgPath
}
