package card

import "github.com/dkoosis/cardfit/pkg/measure"

// Kind is the card structure.
type Kind = measure.CardKind

// Card kinds.
const (
	Text            = measure.KindText
	TextImage       = measure.KindTextImage
	Picture         = measure.KindPicture
	PictureReversed = measure.KindPictureReversed
)

// Props is what the host passes to a card.
type Props struct {
	Text      string
	Indicator *int // nil means DefaultIndicator
	Reverse   bool // picture cards only: image on the other side
	Compact   bool // text-with-image only: compact centering threshold
}

// Indicator returns a pointer to v, for Props literals.
func Indicator(v int) *int { return &v }

// Badge returns the badge the props describe.
func (p Props) Badge() Badge {
	if p.Indicator == nil {
		return NewBadge(DefaultIndicator)
	}
	return NewBadge(*p.Indicator)
}

// ResolveKind applies Reverse to picture cards.
func ResolveKind(k Kind, reverse bool) Kind {
	if k == Picture && reverse {
		return PictureReversed
	}
	return k
}
