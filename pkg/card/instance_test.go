package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/cardfit/pkg/measure"
	"github.com/dkoosis/cardfit/pkg/textlayout"
)

func TestInstance_RunsOnceAndSubscribes_When_Mounted(t *testing.T) {
	t.Parallel()

	inst := New(Text, Props{Text: "Hello", Indicator: Indicator(5)}, nil, 40)

	assert.Equal(t, Bound, inst.State())
	assert.Equal(t, 1, inst.Runs())
	assert.Equal(t, 1, inst.Container().Observers())
	assert.Equal(t, measure.SingleLine, inst.Variant().Density)
	assert.Equal(t, 1, inst.ShadowMeasurements())
}

func TestInstance_StaysUnbound_When_ContainerDetached(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()
	inst := NewInstance(Text, Props{Text: "Hello"}, env)

	assert.False(t, inst.Mount(nil))
	assert.False(t, inst.Mount(env.NewContainer(Text, 40)))
	assert.Equal(t, Unbound, inst.State())
	assert.Equal(t, measure.DefaultVariant, inst.Variant())

	inst.SetIndicator(3)
	assert.Zero(t, inst.Runs(), "unbound instances do not measure")
}

func TestInstance_RejectsSecondMount(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()
	inst := New(Text, Props{Text: "Hello"}, env, 40)
	other := env.NewContainer(Text, 40)
	other.Attach()

	assert.False(t, inst.Mount(other))
	assert.Zero(t, other.Observers())
}

func TestInstance_Recomputes_When_ContainerResizes(t *testing.T) {
	t.Parallel()

	inst := New(Text, Props{Text: "hello world foo", Indicator: Indicator(1)}, nil, 40)
	require.Equal(t, measure.SingleLine, inst.Variant().Density)

	inst.Resize(16)
	assert.Equal(t, 2, inst.Runs())
	assert.Equal(t, measure.MultiLine, inst.Variant().Density)
	assert.Equal(t, 2, inst.Result().LineCount)

	inst.Resize(16)
	assert.Equal(t, 2, inst.Runs(), "no size change, no run")
}

func TestInstance_RecomputesOnce_When_TextChanges(t *testing.T) {
	t.Parallel()

	inst := New(Text, Props{Text: "Hello", Indicator: Indicator(1)}, nil, 16)
	require.Equal(t, 1, inst.Runs())

	inst.SetText("hello world foo bar")

	assert.Equal(t, 2, inst.Runs(), "the size change caused by our own edit must not trigger a second run")
	assert.Equal(t, "hello world foo bar", inst.Props().Text)
	assert.Greater(t, inst.Result().LineCount, 1)
}

func TestInstance_SkipsShadow_When_IndicatorBecomesZero(t *testing.T) {
	t.Parallel()

	inst := New(Text, Props{Text: "hello wor", Indicator: Indicator(4)}, nil, 16)
	require.True(t, inst.Result().Overflow)
	shadows := inst.ShadowMeasurements()

	inst.SetIndicator(0)

	assert.Equal(t, 2, inst.Runs())
	assert.False(t, inst.Result().Overflow)
	assert.False(t, inst.Variant().ReserveExtraLine)
	assert.Equal(t, measure.SingleLine, inst.Variant().Density)
	assert.Equal(t, shadows, inst.ShadowMeasurements(), "no shadow measurement for a hidden badge")
}

func TestInstance_StopsRecomputing_When_Disposed(t *testing.T) {
	t.Parallel()

	inst := New(Text, Props{Text: "hello world foo"}, nil, 40)
	box := inst.Container()

	inst.Dispose()
	inst.Dispose()

	assert.Equal(t, TornDown, inst.State())
	assert.Zero(t, box.Observers(), "subscription cancelled")

	box.SetWidth(40)
	inst.Resize(12)
	inst.SetText("other")
	inst.SetIndicator(9)
	assert.Equal(t, 1, inst.Runs())
}

func TestInstance_KeepsPreviousVariant_When_ContainerLosesLayout(t *testing.T) {
	t.Parallel()

	inst := New(Text, Props{Text: "hello wor", Indicator: Indicator(2)}, nil, 16)
	before := inst.Variant()
	require.True(t, before.ReserveExtraLine)

	inst.Container().SetWidth(0)

	assert.Equal(t, before, inst.Variant())
	assert.Equal(t, 1, inst.Runs())
}

func TestInstance_ResolvesReversedPicture_When_ReverseSet(t *testing.T) {
	t.Parallel()

	inst := New(Picture, Props{Text: "Hello", Reverse: true}, nil, 40)

	assert.Equal(t, PictureReversed, inst.Kind())
	assert.Zero(t, inst.ShadowMeasurements(), "pictures tolerate badge collisions")
}

func TestInstance_MountsOnExternalContainer(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()
	box := textlayout.NewBox(textlayout.Style{Width: 80, Font: env.Font, Wrap: env.Wrap})
	box.Attach()
	inst := NewInstance(Text, Props{Text: "hello wor", Indicator: Indicator(1)}, env)

	require.True(t, inst.Mount(box))
	assert.Equal(t, "hello wor", box.Text())
	assert.True(t, inst.Variant().ReserveExtraLine)
}

func TestInstance_Recomputes_When_ContainerReattachedAfterTextChange(t *testing.T) {
	t.Parallel()

	inst := New(Text, Props{Text: "Hello", Indicator: Indicator(5)}, nil, 40)
	box := inst.Container()
	require.Equal(t, measure.SingleLine, inst.Variant().Density)

	box.Detach()
	inst.SetText(strings.Repeat("lorem ipsum dolor ", 8))
	assert.Equal(t, 1, inst.Runs(), "a detached container is not measured")

	box.Attach()

	assert.Equal(t, 2, inst.Runs())
	assert.Equal(t, measure.MultiLine, inst.Variant().Density)
	assert.Equal(t, len(box.Lines()), inst.Result().LineCount)

	out := NewComposer(inst.Env()).Compose(inst)
	assert.Equal(t, measure.MultiLine, out.Variant.Density)
	assert.Len(t, out.TextLines, inst.Result().LineCount)
}

func TestInstance_Recomputes_When_ContainerReattachedAfterIndicatorChange(t *testing.T) {
	t.Parallel()

	inst := New(Text, Props{Text: "hello wor", Indicator: Indicator(0)}, nil, 16)
	box := inst.Container()
	require.False(t, inst.Variant().ReserveExtraLine)

	box.Detach()
	inst.SetIndicator(3)
	box.Attach()

	assert.True(t, inst.Result().Overflow)
	assert.True(t, inst.Variant().ReserveExtraLine)
}
