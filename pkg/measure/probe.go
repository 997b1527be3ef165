package measure

import (
	"math"

	"github.com/dkoosis/cardfit/pkg/textlayout"
)

// DefaultLineHeight is the line height assumed when the surface cannot
// resolve one.
const DefaultLineHeight = textlayout.DefaultLineHeight

// Geometry is the rendered geometry the probe reads.
type Geometry interface {
	Height() float64
	LineHeight() (float64, bool)
}

// ProbeResult is what the probe read and derived.
type ProbeResult struct {
	Height     float64
	LineHeight float64
	LineCount  int
}

// Probe reads g and derives its line count.
func Probe(g Geometry) ProbeResult {
	lh, ok := g.LineHeight()
	if !ok || lh <= 0 || math.IsNaN(lh) {
		lh = DefaultLineHeight
	}
	h := g.Height()
	return ProbeResult{Height: h, LineHeight: lh, LineCount: LineCount(h, lh)}
}

// LineCount returns round(height / lineHeight), never less than one.
func LineCount(height, lineHeight float64) int {
	if lineHeight <= 0 {
		lineHeight = DefaultLineHeight
	}
	n := int(math.Round(height / lineHeight))
	if n < 1 {
		return 1
	}
	return n
}
