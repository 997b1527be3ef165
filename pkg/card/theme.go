package card

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds all visual styling for cards.
type Theme struct {
	Colors ThemeColors `yaml:"colors"`
	Icons  ThemeIcons  `yaml:"icons"`
	Images ThemeImages `yaml:"images"`

	// Monochrome drops every color and uses ASCII borders.
	Monochrome bool `yaml:"monochrome"`
}

// ThemeColors defines the card palette.
type ThemeColors struct {
	Border        string `yaml:"border"`         // Card border
	Text          string `yaml:"text"`           // Card text
	Menu          string `yaml:"menu"`           // Menu affordance
	BadgeActive   string `yaml:"badge_active"`   // Active badge background
	BadgeInactive string `yaml:"badge_inactive"` // Inactive badge background
	BadgeText     string `yaml:"badge_text"`     // Badge label
	Image         string `yaml:"image"`          // Image placeholder fill
}

// ThemeIcons defines the glyphs cards draw.
type ThemeIcons struct {
	Menu      string `yaml:"menu"`       // Menu affordance
	ImageFill string `yaml:"image_fill"` // Image placeholder fill
}

// ThemeImages defines the alt text of the static images.
type ThemeImages struct {
	TextImageAlt string `yaml:"text_image_alt"`
	PictureAlt   string `yaml:"picture_alt"`
}

// CompiledTheme holds pre-built lipgloss styles from a Theme.
type CompiledTheme struct {
	CardStyle          lipgloss.Style
	TextStyle          lipgloss.Style
	MenuStyle          lipgloss.Style
	BadgeActiveStyle   lipgloss.Style
	BadgeInactiveStyle lipgloss.Style
	ImageStyle         lipgloss.Style
	AltStyle           lipgloss.Style

	Icons  ThemeIcons
	Images ThemeImages
}

// DefaultTheme returns the default card theme.
func DefaultTheme() *Theme {
	return &Theme{
		Colors: ThemeColors{
			Border:        "#444444", // Dark gray
			Text:          "#CCCCCC", // Light gray
			Menu:          "#626262", // Gray
			BadgeActive:   "#7D56F4", // Purple
			BadgeInactive: "#3A3A3A", // Charcoal
			BadgeText:     "#FAFAFA", // White
			Image:         "#04B575", // Green
		},
		Icons: ThemeIcons{
			Menu:      "\u22ef", // ⋯
			ImageFill: "\u2591", // ░
		},
		Images: ThemeImages{
			TextImageAlt: "Illustration",
			PictureAlt:   "Picture",
		},
	}
}

// MonochromeTheme returns the default theme without colors.
func MonochromeTheme() *Theme {
	t := DefaultTheme()
	t.Monochrome = true
	t.Icons.Menu = "*"
	t.Icons.ImageFill = "#"
	return t
}

// MergeDefaults fills unset fields from DefaultTheme.
func (t *Theme) MergeDefaults() *Theme {
	def := DefaultTheme()
	if t == nil {
		return def
	}
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&t.Colors.Border, def.Colors.Border)
	fill(&t.Colors.Text, def.Colors.Text)
	fill(&t.Colors.Menu, def.Colors.Menu)
	fill(&t.Colors.BadgeActive, def.Colors.BadgeActive)
	fill(&t.Colors.BadgeInactive, def.Colors.BadgeInactive)
	fill(&t.Colors.BadgeText, def.Colors.BadgeText)
	fill(&t.Colors.Image, def.Colors.Image)
	fill(&t.Icons.Menu, def.Icons.Menu)
	fill(&t.Icons.ImageFill, def.Icons.ImageFill)
	fill(&t.Images.TextImageAlt, def.Images.TextImageAlt)
	fill(&t.Images.PictureAlt, def.Images.PictureAlt)
	return t
}

// Compile builds lipgloss styles from the theme.
func (t *Theme) Compile() *CompiledTheme {
	t = t.MergeDefaults()
	ct := &CompiledTheme{Icons: t.Icons, Images: t.Images}

	if t.Monochrome {
		ct.CardStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
		ct.TextStyle = lipgloss.NewStyle()
		ct.MenuStyle = lipgloss.NewStyle()
		ct.BadgeActiveStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
		ct.BadgeInactiveStyle = lipgloss.NewStyle().Padding(0, 1)
		ct.ImageStyle = lipgloss.NewStyle()
		ct.AltStyle = lipgloss.NewStyle()
		return ct
	}

	ct.CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Colors.Border)).
		Padding(0, 1)

	ct.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Text))
	ct.MenuStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Menu)).Bold(true)

	ct.BadgeActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Colors.BadgeText)).
		Background(lipgloss.Color(t.Colors.BadgeActive)).
		Padding(0, 1)

	ct.BadgeInactiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Colors.BadgeText)).
		Background(lipgloss.Color(t.Colors.BadgeInactive)).
		Padding(0, 1)

	ct.ImageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Image))
	ct.AltStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Text)).Italic(true)

	return ct
}

// BadgeStyle returns the style for a badge in the given state.
func (ct *CompiledTheme) BadgeStyle(active bool) lipgloss.Style {
	if active {
		return ct.BadgeActiveStyle
	}
	return ct.BadgeInactiveStyle
}

// RenderBadge renders b, or "" when it is hidden.
func (ct *CompiledTheme) RenderBadge(b Badge) string {
	if !b.Visible() {
		return ""
	}
	return ct.BadgeStyle(b.Active()).Render(b.Label())
}
