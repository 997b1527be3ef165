package measure

import (
	"fmt"
	"strings"
)

// CardKind selects the card structure and its classification rules.
type CardKind int

const (
	KindText CardKind = iota
	KindTextImage
	KindPicture
	KindPictureReversed
)

// Kinds lists every card kind in gallery order.
var Kinds = []CardKind{KindText, KindTextImage, KindPicture, KindPictureReversed}

var kindNames = map[CardKind]string{
	KindText:            "text",
	KindTextImage:       "text-image",
	KindPicture:         "picture",
	KindPictureReversed: "picture-reversed",
}

func (k CardKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("CardKind(%d)", int(k))
}

// IsPicture reports whether k is one of the picture layouts.
func (k CardKind) IsPicture() bool {
	return k == KindPicture || k == KindPictureReversed
}

// DetectsOverflow reports whether k runs the shadow overflow detector.
// Picture cards tolerate badge collisions.
func (k CardKind) DetectsOverflow() bool {
	return k == KindText || k == KindTextImage
}

// ParseKind parses a kind name as printed by String.
func ParseKind(s string) (CardKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown card kind %q", s)
}
