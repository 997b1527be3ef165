package card

import (
	"strconv"
	"strings"
)

// MaxIndicator bounds the badge magnitude.
const MaxIndicator = 9999

// DefaultIndicator is the badge value used when a card gets none.
const DefaultIndicator = 1

// Badge is the numeric indicator drawn near a card's text. Its magnitude is
// the label, its sign the active state, and zero hides it.
type Badge struct {
	value int
}

// NewBadge clamps v into [-MaxIndicator, MaxIndicator].
func NewBadge(v int) Badge {
	return Badge{value: ClampIndicator(v)}
}

// Value returns the clamped indicator value.
func (b Badge) Value() int { return b.value }

// Visible reports whether the badge is drawn at all.
func (b Badge) Visible() bool { return b.value != 0 }

// Active reports whether the badge uses its active look.
func (b Badge) Active() bool { return b.value > 0 }

// Label returns the displayed text, the absolute value.
func (b Badge) Label() string {
	v := b.value
	if v < 0 {
		v = -v
	}
	return strconv.Itoa(v)
}

// ClampIndicator clamps v into [-MaxIndicator, MaxIndicator].
func ClampIndicator(v int) int {
	if v > MaxIndicator {
		return MaxIndicator
	}
	if v < -MaxIndicator {
		return -MaxIndicator
	}
	return v
}

// ParseIndicator reads a badge value from free-form input. Leading white
// space and an optional sign are accepted and parsing stops at the first
// non-digit, so "12px" reads as 12. Input without digits reads as 0. The
// result is clamped.
func ParseIndicator(s string) int {
	s = strings.TrimLeft(s, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n <= MaxIndicator {
			n = n*10 + int(s[i]-'0')
		}
	}
	if neg {
		n = -n
	}
	return ClampIndicator(n)
}
