package measure

import (
	"github.com/dkoosis/cardfit/pkg/textlayout"
)

// testFont is the default card metrics: eight units per cell, 24 per row.
var testFont = textlayout.CellFont{CellWidth: 8, RowHeight: 24}

// newContainer returns an attached text container of the given unit width.
func newContainer(width float64, text string) *textlayout.Box {
	b := textlayout.NewBox(textlayout.Style{
		Width: width,
		Font:  testFont,
		Wrap:  textlayout.WrapBreakWord,
	})
	b.SetText(text)
	b.Attach()
	return b
}
