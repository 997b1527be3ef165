package measure

import "fmt"

// Density is the line-count class of a card.
type Density int

const (
	MultiLine Density = iota
	SingleLine
)

func (d Density) String() string {
	if d == SingleLine {
		return "single-line"
	}
	return "multi-line"
}

// Alignment is the vertical alignment of a card's text block.
type Alignment int

const (
	Centered Alignment = iota
	TopAligned
)

func (a Alignment) String() string {
	if a == TopAligned {
		return "top"
	}
	return "center"
}

// Result is one measurement of a card's text container.
type Result struct {
	LineCount  int
	LineHeight float64
	Height     float64
	Overflow   bool
}

// Variant is the layout a card renders with. The zero value is the default
// variant: multi-line, centered, no reserved line.
type Variant struct {
	Density          Density
	Alignment        Alignment
	ReserveExtraLine bool
}

// DefaultVariant is used until a container can be measured.
var DefaultVariant = Variant{}

func (v Variant) String() string {
	return fmt.Sprintf("%s/%s/reserve=%t", v.Density, v.Alignment, v.ReserveExtraLine)
}

// Classify maps a measurement onto a variant for kind. compact selects the
// compact text-with-image threshold.
func Classify(r Result, kind CardKind, compact bool, t Thresholds) Variant {
	if r.LineCount < 1 {
		return DefaultVariant
	}
	t = t.WithDefaults()

	v := Variant{Density: density(r)}
	switch kind {
	case KindText:
		v.ReserveExtraLine = r.Overflow
	case KindTextImage:
		limit := t.TextImage.CenterMaxLines
		if compact {
			limit = t.TextImage.CompactCenterMaxLines
		}
		if r.LineCount > limit {
			v.Alignment = TopAligned
		}
		v.ReserveExtraLine = r.Overflow
	case KindPicture, KindPictureReversed:
		lh := r.LineHeight
		if lh <= 0 {
			lh = DefaultLineHeight
		}
		if r.Height > lh*t.pictureRule(kind).CenterHeightFactor {
			v.Alignment = TopAligned
		}
		v.Density = density(Result{LineCount: r.LineCount})
	default:
		return DefaultVariant
	}
	return v
}

// density gives overflow precedence: a badge that would wrap makes the card
// multi-line even when the text alone fits on one line.
func density(r Result) Density {
	if r.LineCount == 1 && !r.Overflow {
		return SingleLine
	}
	return MultiLine
}
