package textlayout

import "reflect"

// OverflowWrap controls what happens to a word wider than its line.
type OverflowWrap int

const (
	// WrapNormal lets an unbreakable word overflow on its own line.
	WrapNormal OverflowWrap = iota
	// WrapBreakWord splits an unbreakable word at grapheme boundaries.
	WrapBreakWord
)

// String returns the CSS keyword for w.
func (w OverflowWrap) String() string {
	if w == WrapBreakWord {
		return "break-word"
	}
	return "normal"
}

// WhiteSpace controls white space collapsing.
type WhiteSpace int

const (
	// WhiteSpaceNormal collapses every run of white space, newlines included,
	// to a single space.
	WhiteSpaceNormal WhiteSpace = iota
	// WhiteSpacePreLine collapses spaces but keeps newlines as hard breaks.
	WhiteSpacePreLine
)

// Style is the set of parameters that decide how a Box wraps its text.
// Two boxes with equal styles and equal content produce identical lines.
type Style struct {
	Width      float64 // content width in units; zero means not laid out
	LineHeight float64 // explicit line height; zero defers to the font
	Font       Font
	Wrap       OverflowWrap
	WhiteSpace WhiteSpace
}

// ResolvedLineHeight returns the effective line height. ok is false when
// neither the style nor the font provides one.
func (s Style) ResolvedLineHeight() (float64, bool) {
	if s.LineHeight > 0 {
		return s.LineHeight, true
	}
	if s.Font != nil {
		return s.Font.LineHeight()
	}
	return 0, false
}

func (s Style) font() Font {
	if s.Font == nil {
		return fallbackFont
	}
	return s.Font
}

func (s Style) lineHeightOrDefault() float64 {
	if lh, ok := s.ResolvedLineHeight(); ok {
		return lh
	}
	return DefaultLineHeight
}

// Equal reports whether s and o lay text out identically. Fonts are equal
// when they have the same dynamic type and that type is comparable and ==;
// fonts of a non-comparable type never compare equal.
func (s Style) Equal(o Style) bool {
	return s.Width == o.Width &&
		s.LineHeight == o.LineHeight &&
		s.Wrap == o.Wrap &&
		s.WhiteSpace == o.WhiteSpace &&
		sameFont(s.Font, o.Font)
}

func sameFont(a, b Font) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
