// Package config handles configuration loading and merging for cardfit.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (-width, -no-color, -compact)
//  2. Environment variables (CARDFIT_NO_COLOR, NO_COLOR, CARDFIT_CARD_WIDTH)
//  3. YAML config file (.cardfit.yaml in the working directory or
//     ~/.config/cardfit/.cardfit.yaml)
//  4. Hardcoded defaults
//
// # Sections
//
//   - metrics: cell width and line height of the terminal font, in layout units
//   - badge: margin added to the badge width when testing for a collision
//   - thresholds: per-kind centering thresholds
//   - theme: colors, icons and image alt text
//   - card: default card width in cells
//   - demo: gallery text, indicator and card counts
//
// # Environment Variables
//
//   - CARDFIT_NO_COLOR or NO_COLOR: "true" or "1" selects the monochrome theme
//   - CARDFIT_CARD_WIDTH: default card width in cells
//   - CARDFIT_DEBUG: any non-empty value enables debug output
package config
