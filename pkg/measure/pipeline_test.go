package measure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/cardfit/pkg/textlayout"
)

// badgeWidth is a one-digit badge with one cell of padding each side.
const badgeWidth = 24.0

func TestPipeline_ClassifiesSingleLine_When_ShortTextAndBadge(t *testing.T) {
	t.Parallel()

	p := NewPipeline(DefaultBadgeMargin, DefaultThresholds())
	r, v, ok := p.Run(Input{Kind: KindText, Box: newContainer(300, "Hello"), Badge: 5, BadgeWidth: badgeWidth})

	require.True(t, ok)
	assert.Equal(t, 1, r.LineCount)
	assert.False(t, r.Overflow)
	assert.Equal(t, SingleLine, v.Density)
	assert.False(t, v.ReserveExtraLine)
	assert.Equal(t, 1, p.Detector.Invocations())
}

func TestPipeline_SkipsShadow_When_BadgeIsZero(t *testing.T) {
	t.Parallel()

	p := NewPipeline(DefaultBadgeMargin, DefaultThresholds())
	r, v, ok := p.Run(Input{Kind: KindText, Box: newContainer(80, "hello wor"), Badge: 0, BadgeWidth: badgeWidth})

	require.True(t, ok)
	assert.False(t, r.Overflow)
	assert.False(t, v.ReserveExtraLine)
	assert.Zero(t, p.Detector.Invocations(), "shadow measurement must not run for a hidden badge")
}

func TestPipeline_SkipsShadow_When_KindIsPicture(t *testing.T) {
	t.Parallel()

	p := NewPipeline(DefaultBadgeMargin, DefaultThresholds())
	for _, kind := range []CardKind{KindPicture, KindPictureReversed} {
		_, v, ok := p.Run(Input{Kind: kind, Box: newContainer(80, "hello wor"), Badge: 3, BadgeWidth: badgeWidth})
		require.True(t, ok)
		assert.False(t, v.ReserveExtraLine)
	}
	assert.Zero(t, p.Detector.Invocations())
}

func TestPipeline_ReservesLine_When_BadgeCollidesWithLastLine(t *testing.T) {
	t.Parallel()

	p := NewPipeline(DefaultBadgeMargin, DefaultThresholds())
	r, v, ok := p.Run(Input{Kind: KindText, Box: newContainer(80, "hello wor"), Badge: -7, BadgeWidth: badgeWidth})

	require.True(t, ok)
	assert.Equal(t, 1, r.LineCount)
	assert.True(t, r.Overflow)
	assert.Equal(t, Variant{Density: MultiLine, Alignment: Centered, ReserveExtraLine: true}, v)
}

func TestPipeline_TopAlignsTextImage_When_LongTextWrapsToFourLines(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("lorem ", 19) + "ipsums"
	require.Len(t, text, 120)

	p := NewPipeline(DefaultBadgeMargin, DefaultThresholds())
	r, v, ok := p.Run(Input{Kind: KindTextImage, Box: newContainer(300, text), Badge: 1, BadgeWidth: badgeWidth})

	require.True(t, ok)
	assert.Equal(t, 4, r.LineCount)
	assert.Equal(t, MultiLine, v.Density)
	assert.Equal(t, TopAligned, v.Alignment)
}

func TestPipeline_ReturnsNotOK_When_ContainerNotLaidOut(t *testing.T) {
	t.Parallel()

	p := NewPipeline(DefaultBadgeMargin, DefaultThresholds())

	detached := textlayout.NewBox(textlayout.Style{Width: 300, Font: testFont})
	_, v, ok := p.Run(Input{Kind: KindText, Box: detached, Badge: 1, BadgeWidth: badgeWidth})
	assert.False(t, ok)
	assert.Equal(t, DefaultVariant, v)

	zeroWidth := newContainer(0, "hello")
	_, _, ok = p.Run(Input{Kind: KindText, Box: zeroWidth, Badge: 1, BadgeWidth: badgeWidth})
	assert.False(t, ok)

	_, _, ok = p.Run(Input{Kind: KindText})
	assert.False(t, ok)
	assert.Zero(t, p.Detector.Invocations())
}

func TestPipeline_IsIdempotent_When_InputsUnchanged(t *testing.T) {
	t.Parallel()

	p := NewPipeline(DefaultBadgeMargin, DefaultThresholds())
	in := Input{Kind: KindTextImage, Box: newContainer(120, "the quick brown fox jumps"), Badge: 42, BadgeWidth: 32}

	r1, v1, ok1 := p.Run(in)
	r2, v2, ok2 := p.Run(in)

	assert.True(t, ok1 && ok2)
	assert.Equal(t, r1, r2)
	assert.Equal(t, v1, v2)
}

func TestPipeline_SkipsShadow_When_BadgeWidthMissing(t *testing.T) {
	t.Parallel()

	p := NewPipeline(DefaultBadgeMargin, DefaultThresholds())
	r, _, ok := p.Run(Input{Kind: KindText, Box: newContainer(80, "hello wor"), Badge: 9})

	require.True(t, ok)
	assert.False(t, r.Overflow)
	assert.Zero(t, p.Detector.Invocations())
}
