package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dkoosis/cardfit/pkg/measure"
)

// Side is where a picture's image sits.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// BadgeView is the composed badge.
type BadgeView struct {
	Label  string
	Active bool
	Cells  int
}

// Spacer is the blank block reserved for a colliding badge.
type Spacer struct {
	Height float64 // units, the card's line height
	Rows   int
}

// ImageSlot is the static image of image-bearing kinds.
type ImageSlot struct {
	Side  Side
	Alt   string
	Cells int
	Rows  int
}

// Rendered is a composed card.
type Rendered struct {
	Kind      Kind
	Variant   measure.Variant
	TextLines []string
	Badge     *BadgeView // nil when the badge is hidden
	Spacer    *Spacer    // nil unless the variant reserves a line
	Menu      bool
	Image     *ImageSlot
	View      string
}

// Composer turns instances into rendered cards. It measures nothing; it only
// applies the instance's variant.
type Composer struct {
	env *Env
}

// NewComposer returns a composer for env.
func NewComposer(env *Env) *Composer {
	if env == nil {
		env = DefaultEnv()
	}
	return &Composer{env: env}
}

// Compose renders inst with its current variant.
func (c *Composer) Compose(inst *Instance) Rendered {
	theme := c.env.Theme
	if theme == nil {
		theme = DefaultTheme().Compile()
	}
	kind := inst.Kind()
	frame := c.env.Frame(kind)
	v := inst.Variant()

	textCells := frame.TextCells(inst.CardCells())
	var lines []string
	if box := inst.Container(); box != nil {
		if inst.CardCells() == 0 {
			textCells = c.env.Font.Cells(box.Style().Width)
		}
		for _, l := range box.Lines() {
			lines = append(lines, l.Text)
		}
	}

	out := Rendered{Kind: kind, Variant: v, TextLines: lines, Menu: true}

	rows := make([]string, len(lines))
	copy(rows, lines)
	if v.ReserveExtraLine {
		lh := inst.Result().LineHeight
		spacer := &Spacer{Height: lh, Rows: c.env.Font.Rows(lh)}
		out.Spacer = spacer
		for n := 0; n < spacer.Rows; n++ {
			rows = append(rows, "")
		}
	}
	if len(rows) == 0 {
		rows = []string{""}
	}

	body := c.textBlock(theme, rows, textCells)

	badge := inst.Badge()
	if badge.Visible() {
		rendered := theme.RenderBadge(badge)
		out.Badge = &BadgeView{Label: badge.Label(), Active: badge.Active(), Cells: lipgloss.Width(rendered)}
		body = overlayLastRow(body, rendered, textCells)
	}
	body = withMenu(body, theme.MenuStyle.Render(theme.Icons.Menu), frame.MenuCells)

	if frame.ImageCells > 0 {
		slot := &ImageSlot{Cells: frame.ImageCells, Rows: frame.ImageRows, Alt: theme.Images.PictureAlt}
		if kind == TextImage {
			slot.Alt = theme.Images.TextImageAlt
		}
		if kind == PictureReversed {
			slot.Side = SideRight
		}
		out.Image = slot
		body = c.withImage(theme, body, slot, frame.ImageGap, v.Alignment)
	}

	style := theme.CardStyle
	if kind == Text && v.Density == measure.MultiLine {
		style = style.PaddingTop(1).PaddingBottom(1)
	}
	out.View = style.Render(strings.Join(body, "\n"))
	return out
}

// textBlock styles each text row and pads it to the container width.
func (c *Composer) textBlock(theme *CompiledTheme, rows []string, textCells int) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		if lipgloss.Width(r) > textCells {
			r = ansi.Truncate(r, textCells, "")
		}
		out[i] = padRight(theme.TextStyle.Render(r), textCells)
	}
	return out
}

// overlayLastRow draws badge at the right edge of the last row. Text under
// the badge is cut; the spacer row exists so that only happens for kinds
// that tolerate the collision.
func overlayLastRow(rows []string, badge string, width int) []string {
	last := len(rows) - 1
	room := width - lipgloss.Width(badge)
	if room < 0 {
		room = 0
	}
	row := ansi.Truncate(rows[last], room, "")
	rows[last] = padRight(row, room) + badge
	return rows
}

// withMenu appends the menu column, with the affordance on the first row.
func withMenu(rows []string, menu string, cells int) []string {
	if cells <= 0 {
		return rows
	}
	blank := strings.Repeat(" ", cells)
	for i := range rows {
		if i == 0 {
			rows[i] += padLeft(menu, cells)
			continue
		}
		rows[i] += blank
	}
	return rows
}

// withImage joins the image column to the text block, applying alignment
// inside the taller of the two.
func (c *Composer) withImage(theme *CompiledTheme, body []string, slot *ImageSlot, gap int, align measure.Alignment) []string {
	height := slot.Rows
	if len(body) > height {
		height = len(body)
	}
	image := renderImage(theme, slot, height)

	pos := lipgloss.Center
	if align == measure.TopAligned {
		pos = lipgloss.Top
	}
	text := lipgloss.PlaceVertical(height, pos, strings.Join(body, "\n"))
	spacer := strings.Repeat(" ", gap)

	var joined string
	if slot.Side == SideRight {
		joined = lipgloss.JoinHorizontal(lipgloss.Top, text, spacer, image)
	} else {
		joined = lipgloss.JoinHorizontal(lipgloss.Top, image, spacer, text)
	}
	return strings.Split(joined, "\n")
}

// renderImage draws the image placeholder with its alt text in the middle.
func renderImage(theme *CompiledTheme, slot *ImageSlot, height int) string {
	fill := strings.Repeat(theme.Icons.ImageFill, slot.Cells)
	if lipgloss.Width(fill) > slot.Cells {
		fill = ansi.Truncate(fill, slot.Cells, "")
	}
	alt := ansi.Truncate(slot.Alt, slot.Cells, "")
	rows := make([]string, height)
	for i := range rows {
		if i == height/2 {
			rows[i] = theme.AltStyle.Render(lipgloss.PlaceHorizontal(slot.Cells, lipgloss.Center, alt))
			continue
		}
		rows[i] = theme.ImageStyle.Render(fill)
	}
	return strings.Join(rows, "\n")
}

func padLeft(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
