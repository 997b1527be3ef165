package textlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cellFont is eight units per cell and 24 per row, the default card metrics.
var cellFont = CellFont{CellWidth: 8, RowHeight: 24}

func lineTexts(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}

func TestBreakLines_WrapsAtWordBoundaries_When_TextExceedsWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		cells int
		wrap  OverflowWrap
		want  []string
	}{
		{
			name:  "fits on one line",
			text:  "hello",
			cells: 10,
			want:  []string{"hello"},
		},
		{
			name:  "breaks between words",
			text:  "hello world foo",
			cells: 10,
			want:  []string{"hello", "world foo"},
		},
		{
			name:  "trailing space hangs past the edge",
			text:  "hello world",
			cells: 5,
			want:  []string{"hello", "world"},
		},
		{
			name:  "exact fit stays on one line",
			text:  "abc def",
			cells: 7,
			want:  []string{"abc def"},
		},
		{
			name:  "long word overflows with normal wrapping",
			text:  "abcdefgh ij",
			cells: 3,
			wrap:  WrapNormal,
			want:  []string{"abcdefgh", "ij"},
		},
		{
			name:  "long word splits with break-word",
			text:  "abcdefgh ij",
			cells: 3,
			wrap:  WrapBreakWord,
			want:  []string{"abc", "def", "gh", "ij"},
		},
		{
			name:  "hyphen is a break opportunity",
			text:  "well-known",
			cells: 6,
			want:  []string{"well-", "known"},
		},
		{
			name:  "zero width disables wrapping",
			text:  "hello world foo",
			cells: 0,
			want:  []string{"hello world foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tokens := tokenize(collapse(tt.text, WhiteSpaceNormal), cellFont)
			lines := breakLines(tokens, cellFont, cellFont.Units(tt.cells), tt.wrap)
			assert.Equal(t, tt.want, lineTexts(lines))
		})
	}
}

func TestBreakLines_ReportsContentWidth_When_LineHasHangingSpace(t *testing.T) {
	t.Parallel()

	tokens := tokenize("hello world", cellFont)
	lines := breakLines(tokens, cellFont, cellFont.Units(8), WrapNormal)

	require.Len(t, lines, 2)
	assert.InDelta(t, 40.0, lines[0].Width, 0.001, "hanging space must not count")
	assert.InDelta(t, 40.0, lines[1].Width, 0.001)
}

func TestBreakLines_MovesPlaceholder_When_LastLineLacksRoom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		atomWidth float64
		wantLines int
	}{
		{name: "fits beside the text", atomWidth: 40, wantLines: 1},
		{name: "one unit too wide", atomWidth: 41, wantLines: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tokens := tokenize("hello", cellFont)
			tokens = append(tokens, token{content: tt.atomWidth, full: tt.atomWidth, atom: true})
			lines := breakLines(tokens, cellFont, 80, WrapNormal)
			require.Len(t, lines, tt.wantLines)
			assert.Equal(t, 1, lines[len(lines)-1].Placeholders)
		})
	}
}

func TestCollapse_FoldsWhiteSpace_When_ModeDiffers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", collapse("  a \t  b\n c", WhiteSpaceNormal))
	assert.Equal(t, "a b\nc", collapse("a   b \n c", WhiteSpacePreLine))
	assert.Equal(t, "a\u00a0\u00a0b", collapse("a\u00a0\u00a0b", WhiteSpaceNormal), "no-break spaces are preserved")
	assert.Equal(t, "trail ", collapse("trail   ", WhiteSpaceNormal))
	assert.Equal(t, "a b", collapse("a\r\n\f b", WhiteSpaceNormal))
	for _, r := range []string{"\u2003", "\u3000", "\u202f"} {
		assert.Equal(t, "a"+r+r+"b", collapse("a"+r+r+"b", WhiteSpaceNormal), "%U is text, not collapsible space", []rune(r)[0])
	}
}

func TestBreakLines_HonorsHardBreaks_When_PreLine(t *testing.T) {
	t.Parallel()

	tokens := tokenize(collapse("one\ntwo\n\nthree", WhiteSpacePreLine), cellFont)
	lines := breakLines(tokens, cellFont, cellFont.Units(20), WrapNormal)

	assert.Equal(t, []string{"one", "two", "", "three"}, lineTexts(lines))
}
