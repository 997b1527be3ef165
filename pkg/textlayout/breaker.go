package textlayout

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Line is one laid-out line of a Box.
type Line struct {
	Text         string  // visible text, hanging white space removed
	Width        float64 // advance of the content, hanging white space excluded
	Placeholders int     // atomic placeholders placed on this line
}

// token is one unbreakable run: a line segment of text or a placeholder.
type token struct {
	text      string  // segment text including trailing white space
	content   float64 // advance without trailing white space
	full      float64 // advance including trailing white space
	atom      bool
	hardBreak bool // a mandatory break follows this token
}

// collapse applies the white-space rules to s.
func collapse(s string, mode WhiteSpace) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	atLineStart := true
	for _, r := range s {
		switch {
		case r == '\n' && mode == WhiteSpacePreLine:
			b.WriteRune('\n')
			pendingSpace = false
			atLineStart = true
		case isCollapsible(r):
			pendingSpace = true
		default:
			if pendingSpace && !atLineStart {
				b.WriteByte(' ')
			}
			pendingSpace = false
			atLineStart = false
			b.WriteRune(r)
		}
	}
	if pendingSpace && !atLineStart {
		// Trailing space is kept: it hangs, and a following placeholder
		// must still see it.
		b.WriteByte(' ')
	}
	return b.String()
}

// isCollapsible reports whether r is document white space: space, tab, line
// feed, carriage return or form feed. Other Unicode spaces are text.
func isCollapsible(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// tokenize splits collapsed text into line segments.
func tokenize(text string, font Font) []token {
	var tokens []token
	state := -1
	rest := text
	for len(rest) > 0 {
		var seg string
		var mustBreak bool
		seg, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)
		hard := false
		if mustBreak && len(rest) > 0 {
			hard = true
		}
		if strings.HasSuffix(seg, "\n") {
			seg = strings.TrimSuffix(strings.TrimSuffix(seg, "\n"), "\r")
			hard = true
		}
		body := strings.TrimRight(seg, " ")
		tokens = append(tokens, token{
			text:      seg,
			content:   font.Advance(body),
			full:      font.Advance(seg),
			hardBreak: hard,
		})
	}
	return tokens
}

// lineBuilder accumulates tokens for the line being filled.
type lineBuilder struct {
	text    strings.Builder
	width   float64 // including hanging white space
	content float64
	atoms   int
	used    bool
}

func (lb *lineBuilder) add(t token) {
	lb.text.WriteString(t.text)
	lb.content = lb.width + t.content
	lb.width += t.full
	if t.atom {
		lb.atoms++
	}
	lb.used = true
}

func (lb *lineBuilder) line() Line {
	return Line{
		Text:         strings.TrimRight(lb.text.String(), " "),
		Width:        lb.content,
		Placeholders: lb.atoms,
	}
}

func (lb *lineBuilder) reset() {
	lb.text.Reset()
	lb.width, lb.content, lb.atoms, lb.used = 0, 0, 0, false
}

// breakLines lays tokens out greedily into lines no wider than limit.
// A limit of zero or less disables soft wrapping.
func breakLines(tokens []token, font Font, limit float64, wrap OverflowWrap) []Line {
	var lines []Line
	var cur lineBuilder
	flush := func() {
		lines = append(lines, cur.line())
		cur.reset()
	}

	for _, t := range tokens {
		if limit > 0 && cur.used && cur.width+t.content > limit {
			flush()
		}
		if limit > 0 && !t.atom && wrap == WrapBreakWord && t.content > limit {
			t = splitOversized(t, font, limit, &cur, flush)
		}
		cur.add(t)
		if t.hardBreak {
			flush()
		}
	}
	if cur.used {
		flush()
	}
	return lines
}

// splitOversized emits full-width pieces of t and returns the remainder,
// which starts the next line.
func splitOversized(t token, font Font, limit float64, cur *lineBuilder, flush func()) token {
	body := strings.TrimRight(t.text, " ")
	trailing := t.text[len(body):]

	var piece strings.Builder
	pieceWidth := 0.0
	state := -1
	rest := body
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := font.Advance(cluster)
		if piece.Len() > 0 && pieceWidth+w > limit {
			p := piece.String()
			cur.add(token{text: p, content: pieceWidth, full: pieceWidth})
			flush()
			piece.Reset()
			pieceWidth = 0
		}
		piece.WriteString(cluster)
		pieceWidth += w
	}
	remainder := piece.String() + trailing
	return token{
		text:      remainder,
		content:   pieceWidth,
		full:      font.Advance(remainder),
		hardBreak: t.hardBreak,
	}
}
