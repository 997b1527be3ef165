package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dkoosis/cardfit/pkg/card"
	"github.com/dkoosis/cardfit/pkg/textlayout"
)

// CliFlags holds the values of command-line flags that override config.
type CliFlags struct {
	Width   int
	NoColor bool
	Compact bool
	Debug   bool

	// Flags to track if they were explicitly set by the user
	WidthSet   bool
	NoColorSet bool
	CompactSet bool
	DebugSet   bool
}

// ResolvedConfig is the configuration after applying every source.
type ResolvedConfig struct {
	App     *AppConfig
	Width   int
	NoColor bool
	Compact bool
	Debug   bool

	// Resolution metadata (for debugging)
	WidthSource   string // "cli", "env", "file", "default"
	NoColorSource string // "cli", "env", "file", "default"
}

// Resolve applies environment variables and CLI flags over app.
func Resolve(app *AppConfig, flags CliFlags) (*ResolvedConfig, error) {
	if app == nil {
		app = Default()
	}
	resolved := &ResolvedConfig{
		App:           app,
		Width:         app.Card.Width,
		NoColor:       app.NoColor,
		Compact:       app.Demo.Compact,
		Debug:         app.Debug,
		WidthSource:   "file",
		NoColorSource: "file",
	}

	if flags.WidthSet {
		resolved.Width = flags.Width
		resolved.WidthSource = "cli"
	} else if v := os.Getenv("CARDFIT_CARD_WIDTH"); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CARDFIT_CARD_WIDTH %q: %w", v, err)
		}
		resolved.Width = w
		resolved.WidthSource = "env"
	}

	if flags.NoColorSet {
		resolved.NoColor = flags.NoColor
		resolved.NoColorSource = "cli"
	} else if env := getEnvBool("CARDFIT_NO_COLOR", "NO_COLOR"); env != nil {
		resolved.NoColor = *env
		resolved.NoColorSource = "env"
	}

	if flags.CompactSet {
		resolved.Compact = flags.Compact
	}
	if flags.DebugSet {
		resolved.Debug = flags.Debug
	} else if os.Getenv("CARDFIT_DEBUG") != "" {
		resolved.Debug = true
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// Env builds the card environment the resolved config describes.
func (r *ResolvedConfig) Env() *card.Env {
	app := r.App
	theme := app.Theme.MergeDefaults()
	if r.NoColor {
		mono := *theme
		mono.Monochrome = true
		if app.Theme == nil || app.Theme.Icons == card.DefaultTheme().Icons {
			mono.Icons = card.MonochromeTheme().Icons
		}
		theme = &mono
	}

	env := card.DefaultEnv()
	env.Font = textlayout.NewCellFont(app.Metrics.CellWidth, app.Metrics.LineHeight)
	env.BadgeMargin = app.Badge.Margin
	env.Thresholds = app.Thresholds.WithDefaults()
	env.Theme = theme.Compile()
	return env
}

// getEnvBool reads a boolean from the first set environment variable.
// Returns nil if none are set.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

func validateResolvedConfig(cfg *ResolvedConfig) error {
	if cfg.Width <= 0 {
		return fmt.Errorf("card width must be positive, got: %d", cfg.Width)
	}
	if cfg.App.Metrics.CellWidth <= 0 {
		return fmt.Errorf("metrics.cell_width must be positive, got: %g", cfg.App.Metrics.CellWidth)
	}
	return nil
}
