package measure

import (
	"github.com/dkoosis/cardfit/internal/debug"
	"github.com/dkoosis/cardfit/pkg/textlayout"
)

// DefaultBadgeMargin is added to the badge's rendered width to form the
// placeholder footprint.
const DefaultBadgeMargin = 8.0

// placeholderHeight is the placeholder's height. It only has to exist; the
// line box height comes from the line height.
const placeholderHeight = 1.0

// ShadowDetector answers whether appending a badge-sized element to a
// container's last line would wrap it onto a new line. It keeps one hidden
// surface and reuses it for every measurement.
type ShadowDetector struct {
	surface     *textlayout.Box
	margin      float64
	invocations int
}

// NewShadowDetector returns a detector with its own hidden surface.
func NewShadowDetector(margin float64) *ShadowDetector {
	return &ShadowDetector{
		surface: textlayout.NewHiddenBox(textlayout.Style{}),
		margin:  margin,
	}
}

// Margin returns the fixed margin added to the badge width.
func (d *ShadowDetector) Margin() float64 { return d.margin }

// Invocations returns how many shadow layouts have been performed.
func (d *ShadowDetector) Invocations() int {
	if d == nil {
		return 0
	}
	return d.invocations
}

// Surface returns the hidden measurement box.
func (d *ShadowDetector) Surface() *textlayout.Box {
	if d == nil {
		return nil
	}
	return d.surface
}

// Detect reports whether src would gain a line if a placeholder of
// badgeWidth plus the margin followed its text. It reports false without
// measuring when there is no surface, no source, or no badge width.
func (d *ShadowDetector) Detect(src *textlayout.Box, badgeWidth float64) bool {
	if d == nil || d.surface == nil || src == nil || badgeWidth <= 0 {
		return false
	}
	d.invocations++

	shadow := d.surface
	shadow.SetStyle(src.Style())
	shadow.SetText(src.Text())
	original := src.Height()

	p := shadow.AppendPlaceholder(badgeWidth+d.margin, placeholderHeight)
	augmented := shadow.Height()
	p.Remove()

	debug.Logf("shadow", "width=%.1f badge=%.1f height=%.1f->%.1f", src.Style().Width, badgeWidth, original, augmented)
	return augmented > original
}
