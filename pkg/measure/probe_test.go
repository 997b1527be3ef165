package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedGeometry struct {
	height     float64
	lineHeight float64
	resolved   bool
}

func (g fixedGeometry) Height() float64 { return g.height }

func (g fixedGeometry) LineHeight() (float64, bool) { return g.lineHeight, g.resolved }

func TestLineCount_RoundsHeightOverLineHeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		height     float64
		lineHeight float64
		want       int
	}{
		{name: "exact lines", height: 96, lineHeight: 24, want: 4},
		{name: "rounds down below half", height: 35, lineHeight: 24, want: 1},
		{name: "rounds half up", height: 36, lineHeight: 24, want: 2},
		{name: "empty container counts as one line", height: 0, lineHeight: 24, want: 1},
		{name: "unusable line height falls back", height: 48, lineHeight: 0, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, LineCount(tt.height, tt.lineHeight))
		})
	}
}

func TestProbe_FallsBackTo24_When_LineHeightUnresolved(t *testing.T) {
	t.Parallel()

	got := Probe(fixedGeometry{height: 72})

	assert.InDelta(t, 24.0, got.LineHeight, 0.001)
	assert.Equal(t, 3, got.LineCount)
	assert.InDelta(t, 72.0, got.Height, 0.001)
}

func TestProbe_UsesResolvedLineHeight_When_Available(t *testing.T) {
	t.Parallel()

	got := Probe(fixedGeometry{height: 60, lineHeight: 20, resolved: true})

	assert.InDelta(t, 20.0, got.LineHeight, 0.001)
	assert.Equal(t, 3, got.LineCount)
}
