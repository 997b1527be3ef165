package card

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/cardfit/pkg/measure"
	"github.com/dkoosis/cardfit/pkg/textlayout"
)

// Frame is the fixed chrome around a kind's text container, in cells.
type Frame struct {
	Chrome     int // border plus horizontal padding
	MenuCells  int // menu affordance column, gap included
	ImageCells int // image column, zero when the kind has none
	ImageRows  int // image height
	ImageGap   int // gap between image and text
	MinText    int // narrowest text container
}

// DefaultFrames returns the stock chrome for each kind.
func DefaultFrames() map[Kind]Frame {
	return map[Kind]Frame{
		Text:            {Chrome: 4, MenuCells: 2, MinText: 4},
		TextImage:       {Chrome: 4, MenuCells: 2, ImageCells: 10, ImageRows: 4, ImageGap: 1, MinText: 4},
		Picture:         {Chrome: 4, MenuCells: 2, ImageCells: 14, ImageRows: 5, ImageGap: 1, MinText: 4},
		PictureReversed: {Chrome: 4, MenuCells: 2, ImageCells: 14, ImageRows: 5, ImageGap: 1, MinText: 4},
	}
}

// TextCells returns the text container width for a card cardCells wide.
func (f Frame) TextCells(cardCells int) int {
	w := cardCells - f.Chrome - f.MenuCells - f.ImageCells
	if f.ImageCells > 0 {
		w -= f.ImageGap
	}
	if w < f.MinText {
		w = f.MinText
	}
	return w
}

// Env is the shared, read-only configuration cards are built from.
type Env struct {
	Font        textlayout.CellFont
	Wrap        textlayout.OverflowWrap
	BadgeMargin float64
	Thresholds  measure.Thresholds
	Frames      map[Kind]Frame
	Theme       *CompiledTheme
}

// DefaultEnv returns an environment with the default metrics and theme.
func DefaultEnv() *Env {
	return &Env{
		Font:        textlayout.CellFont{CellWidth: 8, RowHeight: 24},
		Wrap:        textlayout.WrapBreakWord,
		BadgeMargin: measure.DefaultBadgeMargin,
		Thresholds:  measure.DefaultThresholds(),
		Frames:      DefaultFrames(),
		Theme:       DefaultTheme().Compile(),
	}
}

// Frame returns the chrome for k.
func (e *Env) Frame(k Kind) Frame {
	if f, ok := e.Frames[k]; ok {
		return f
	}
	return DefaultFrames()[k]
}

// ContainerStyle returns the text container style for a kind at a card width.
func (e *Env) ContainerStyle(k Kind, cardCells int) textlayout.Style {
	return textlayout.Style{
		Width: e.Font.Units(e.Frame(k).TextCells(cardCells)),
		Font:  e.Font,
		Wrap:  e.Wrap,
	}
}

// NewContainer returns a detached text container for a kind.
func (e *Env) NewContainer(k Kind, cardCells int) *textlayout.Box {
	return textlayout.NewBox(e.ContainerStyle(k, cardCells))
}

// BadgeWidth returns the rendered width of b in units, or zero when the
// badge is hidden or there is no theme to render it with.
func (e *Env) BadgeWidth(b Badge) float64 {
	if !b.Visible() || e.Theme == nil {
		return 0
	}
	return e.Font.Units(lipgloss.Width(e.Theme.RenderBadge(b)))
}
