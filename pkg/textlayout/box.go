package textlayout

import (
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/unicode/norm"
)

// Size is the laid-out extent of a Box in units.
type Size struct {
	Width  float64
	Height float64
}

// Unobserve cancels a size observer. Calling it more than once is a no-op.
type Unobserve func()

type observer struct {
	fn     func(Size)
	active bool
}

// Placeholder is an atomic inline item appended after a box's text.
type Placeholder struct {
	box    *Box
	width  float64
	height float64
}

// Width returns the placeholder's advance.
func (p *Placeholder) Width() float64 { return p.width }

// Remove detaches the placeholder from its box. Removing twice is a no-op.
func (p *Placeholder) Remove() {
	if p.box == nil {
		return
	}
	b := p.box
	p.box = nil
	for i, q := range b.placeholders {
		if q == p {
			b.placeholders = append(b.placeholders[:i], b.placeholders[i+1:]...)
			break
		}
	}
	b.changed()
}

// Box is a text container. The zero value is not usable; use NewBox.
type Box struct {
	style        Style
	text         string
	placeholders []*Placeholder
	attached     bool
	hidden       bool

	dirty bool
	lines []Line

	observers []*observer
	lastSize  Size
}

// NewBox returns a detached box with the given style.
func NewBox(style Style) *Box {
	return &Box{style: style, dirty: true}
}

// NewHiddenBox returns a box that renderers must never display.
func NewHiddenBox(style Style) *Box {
	b := NewBox(style)
	b.hidden = true
	return b
}

// Hidden reports whether the box is a measurement-only surface.
func (b *Box) Hidden() bool { return b.hidden }

// Style returns the box's current style.
func (b *Box) Style() Style { return b.style }

// SetStyle replaces the style.
func (b *Box) SetStyle(s Style) {
	if b.style.Equal(s) {
		return
	}
	b.style = s
	b.changed()
}

// SetWidth changes only the content width.
func (b *Box) SetWidth(w float64) {
	s := b.style
	s.Width = w
	b.SetStyle(s)
}

// Text returns the box's text after ANSI stripping and NFC normalization.
func (b *Box) Text() string { return b.text }

// SetText replaces the text. Escape sequences are stripped so styled input
// measures the same as plain input.
func (b *Box) SetText(s string) {
	s = norm.NFC.String(ansi.Strip(s))
	if s == b.text {
		return
	}
	b.text = s
	b.changed()
}

// AppendPlaceholder adds an atomic inline item of the given size after the
// text and any earlier placeholders.
func (b *Box) AppendPlaceholder(width, height float64) *Placeholder {
	p := &Placeholder{box: b, width: width, height: height}
	b.placeholders = append(b.placeholders, p)
	b.changed()
	return p
}

// Placeholders returns the number of placeholders currently in the box.
func (b *Box) Placeholders() int { return len(b.placeholders) }

// Attach marks the box as part of a live tree. Only attached boxes notify
// observers. A detached box has no rendered size, so attaching one that
// has observers always reports its size to them.
func (b *Box) Attach() {
	if b.attached {
		return
	}
	b.attached = true
	if len(b.observers) == 0 {
		b.lastSize = b.Size()
		return
	}
	b.notify()
}

// Detach removes the box from the live tree.
func (b *Box) Detach() {
	b.attached = false
	b.lastSize = Size{}
}

// Attached reports whether the box is in a live tree.
func (b *Box) Attached() bool { return b.attached }

// LaidOut reports whether the box is attached and has a usable width.
func (b *Box) LaidOut() bool { return b.attached && b.style.Width > 0 }

// Lines returns the laid-out lines.
func (b *Box) Lines() []Line {
	b.layout()
	return b.lines
}

// Height returns the rendered height: lines times the resolved line height.
func (b *Box) Height() float64 {
	return float64(len(b.Lines())) * b.style.lineHeightOrDefault()
}

// LineHeight returns the style's resolved line height.
func (b *Box) LineHeight() (float64, bool) {
	return b.style.ResolvedLineHeight()
}

// Size returns the box's width and rendered height.
func (b *Box) Size() Size {
	return Size{Width: b.style.Width, Height: b.Height()}
}

// Observe registers fn to run after any mutation that changes the box's
// Size while it is attached. Observers run synchronously in registration
// order and are not called for the current size.
func (b *Box) Observe(fn func(Size)) Unobserve {
	o := &observer{fn: fn, active: true}
	b.observers = append(b.observers, o)
	if b.attached {
		b.lastSize = b.Size()
	}
	return func() {
		if !o.active {
			return
		}
		o.active = false
		b.prune()
	}
}

// Observers returns the number of active observers.
func (b *Box) Observers() int {
	n := 0
	for _, o := range b.observers {
		if o.active {
			n++
		}
	}
	return n
}

func (b *Box) prune() {
	kept := b.observers[:0]
	for _, o := range b.observers {
		if o.active {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(b.observers); i++ {
		b.observers[i] = nil
	}
	b.observers = kept
}

func (b *Box) layout() {
	if !b.dirty {
		return
	}
	font := b.style.font()
	tokens := tokenize(collapse(b.text, b.style.WhiteSpace), font)
	for _, p := range b.placeholders {
		tokens = append(tokens, token{content: p.width, full: p.width, atom: true})
	}
	b.lines = breakLines(tokens, font, b.style.Width, b.style.Wrap)
	b.dirty = false
}

func (b *Box) changed() {
	b.dirty = true
	if !b.attached || len(b.observers) == 0 {
		return
	}
	b.notify()
}

// notify runs the active observers when the size differs from the last one
// they saw.
func (b *Box) notify() {
	size := b.Size()
	if size == b.lastSize {
		return
	}
	b.lastSize = size
	snapshot := make([]*observer, len(b.observers))
	copy(snapshot, b.observers)
	for _, o := range snapshot {
		if o.active {
			o.fn(size)
		}
	}
}
