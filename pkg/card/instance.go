package card

import (
	"github.com/dkoosis/cardfit/internal/debug"
	"github.com/dkoosis/cardfit/pkg/measure"
	"github.com/dkoosis/cardfit/pkg/textlayout"
)

// State is an instance's binding state.
type State int

const (
	Unbound State = iota
	Bound
	TornDown
)

func (s State) String() string {
	switch s {
	case Bound:
		return "bound"
	case TornDown:
		return "torn-down"
	default:
		return "unbound"
	}
}

// Instance is one card on screen. It owns its measurement state and keeps it
// current: mounting runs the pipeline once and subscribes to the text
// container's size changes; every size change and every text or badge change
// runs it again; disposing cancels the subscription.
//
// An Instance is not safe for concurrent use.
type Instance struct {
	kind      Kind
	props     Props
	env       *Env
	pipeline  *measure.Pipeline
	cardCells int

	box       *textlayout.Box
	unobserve textlayout.Unobserve
	state     State
	mutating  bool

	result  measure.Result
	variant measure.Variant
	runs    int
}

// NewInstance returns an unbound instance. Picture kinds honor props.Reverse.
func NewInstance(kind Kind, props Props, env *Env) *Instance {
	if env == nil {
		env = DefaultEnv()
	}
	return &Instance{
		kind:     ResolveKind(kind, props.Reverse),
		props:    props,
		env:      env,
		pipeline: measure.NewPipeline(env.BadgeMargin, env.Thresholds),
		variant:  measure.DefaultVariant,
		result:   measure.Result{LineHeight: measure.DefaultLineHeight},
	}
}

// New builds a card cardCells wide: it creates the text container, attaches
// it and mounts the instance on it.
func New(kind Kind, props Props, env *Env, cardCells int) *Instance {
	inst := NewInstance(kind, props, env)
	inst.cardCells = cardCells
	box := inst.env.NewContainer(inst.kind, cardCells)
	box.Attach()
	inst.Mount(box)
	return inst
}

// Mount binds the instance to a live text container. It runs the pipeline
// once and then subscribes to size changes. It reports false, and stays
// unbound, when the instance is not unbound or the container is not attached.
func (i *Instance) Mount(box *textlayout.Box) bool {
	if i.state != Unbound || box == nil || !box.Attached() {
		return false
	}
	i.box = box
	i.withMutation(func() { box.SetText(i.props.Text) })
	i.state = Bound
	i.recompute("mount")
	i.unobserve = box.Observe(func(textlayout.Size) {
		if i.mutating || i.state != Bound {
			return
		}
		i.recompute("resize")
	})
	return true
}

// Dispose cancels the size subscription. The instance never recomputes again.
func (i *Instance) Dispose() {
	if i.state == TornDown {
		return
	}
	if i.unobserve != nil {
		i.unobserve()
		i.unobserve = nil
	}
	i.state = TornDown
	debug.Logf("card", "kind=%s torn down after %d runs", i.kind, i.runs)
}

// SetText replaces the text and recomputes.
func (i *Instance) SetText(s string) {
	if i.state == TornDown {
		return
	}
	i.props.Text = s
	if i.box != nil {
		i.withMutation(func() { i.box.SetText(s) })
	}
	i.recompute("text")
}

// SetIndicator replaces the badge value and recomputes.
func (i *Instance) SetIndicator(v int) {
	if i.state == TornDown {
		return
	}
	i.props.Indicator = Indicator(v)
	i.recompute("indicator")
}

// Resize changes the card width. The resulting container size change drives
// the recomputation.
func (i *Instance) Resize(cardCells int) {
	if i.state == TornDown || i.box == nil {
		return
	}
	i.cardCells = cardCells
	i.box.SetStyle(i.env.ContainerStyle(i.kind, cardCells))
}

// withMutation runs fn with size notifications from this instance's own
// edits suppressed; the caller recomputes once afterwards.
func (i *Instance) withMutation(fn func()) {
	i.mutating = true
	defer func() { i.mutating = false }()
	fn()
}

func (i *Instance) recompute(trigger string) {
	if i.state != Bound {
		return
	}
	badge := i.props.Badge()
	r, v, ok := i.pipeline.Run(measure.Input{
		Kind:       i.kind,
		Compact:    i.props.Compact,
		Box:        i.box,
		Badge:      badge.Value(),
		BadgeWidth: i.env.BadgeWidth(badge),
	})
	if !ok {
		return
	}
	i.result, i.variant = r, v
	i.runs++
	debug.Logf("card", "kind=%s trigger=%s run=%d variant=%s", i.kind, trigger, i.runs, v)
}

// Kind returns the resolved card kind.
func (i *Instance) Kind() Kind { return i.kind }

// Props returns the current props.
func (i *Instance) Props() Props { return i.props }

// Badge returns the current badge.
func (i *Instance) Badge() Badge { return i.props.Badge() }

// State returns the binding state.
func (i *Instance) State() State { return i.state }

// Result returns the latest measurement.
func (i *Instance) Result() measure.Result { return i.result }

// Variant returns the latest layout variant.
func (i *Instance) Variant() measure.Variant { return i.variant }

// Runs returns how many pipeline runs produced a result.
func (i *Instance) Runs() int { return i.runs }

// Container returns the text container, or nil before Mount.
func (i *Instance) Container() *textlayout.Box { return i.box }

// CardCells returns the card width in cells, as last set by New or Resize.
func (i *Instance) CardCells() int { return i.cardCells }

// ShadowMeasurements returns how many shadow layouts this instance ran.
func (i *Instance) ShadowMeasurements() int { return i.pipeline.Detector.Invocations() }

// Env returns the environment the instance was built with.
func (i *Instance) Env() *Env { return i.env }
