package textlayout

import (
	runewidth "github.com/mattn/go-runewidth"
)

// DefaultLineHeight is used when neither the style nor the font resolves a
// line height.
const DefaultLineHeight = 24.0

// Font measures text in layout units. Comparable implementations let
// Box.SetStyle skip re-layout when nothing changed.
type Font interface {
	// Advance returns the horizontal extent of s.
	Advance(s string) float64
	// LineHeight returns the font's natural line height. ok is false when the
	// font cannot resolve one.
	LineHeight() (height float64, ok bool)
}

// CellFont measures text as terminal cells. Each cell is CellWidth units wide
// and each row RowHeight units tall. A RowHeight of zero leaves the line
// height unresolved.
type CellFont struct {
	CellWidth float64
	RowHeight float64
}

// NewCellFont returns a CellFont with the given cell geometry.
func NewCellFont(cellWidth, rowHeight float64) CellFont {
	return CellFont{CellWidth: cellWidth, RowHeight: rowHeight}
}

// Advance implements Font. Wide East Asian runes take two cells.
func (f CellFont) Advance(s string) float64 {
	return float64(runewidth.StringWidth(s)) * f.cellWidth()
}

// LineHeight implements Font.
func (f CellFont) LineHeight() (float64, bool) {
	if f.RowHeight <= 0 {
		return 0, false
	}
	return f.RowHeight, true
}

// Cells converts a width in units to whole cells, rounding down.
func (f CellFont) Cells(units float64) int {
	if units <= 0 {
		return 0
	}
	return int(units / f.cellWidth())
}

// Units converts a cell count to units.
func (f CellFont) Units(cells int) float64 {
	return float64(cells) * f.cellWidth()
}

// Rows converts a height in units to whole rows, rounding to nearest.
func (f CellFont) Rows(units float64) int {
	lh, ok := f.LineHeight()
	if !ok {
		lh = DefaultLineHeight
	}
	if units <= 0 {
		return 0
	}
	return int(units/lh + 0.5)
}

func (f CellFont) cellWidth() float64 {
	if f.CellWidth <= 0 {
		return 1
	}
	return f.CellWidth
}

// fallbackFont is used by styles that carry no font.
var fallbackFont Font = CellFont{CellWidth: 1}
