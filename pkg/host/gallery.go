package host

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/cardfit/internal/debug"
	"github.com/dkoosis/cardfit/pkg/card"
	"github.com/dkoosis/cardfit/pkg/measure"
)

// MinCardCells is the narrowest card the gallery lays out.
const MinCardCells = 16

// Spec describes the gallery content.
type Spec struct {
	Text      string
	ImageText string // initial text of text-with-image cards; Text when empty
	Indicator int
	Compact   bool
	CardCells int
	Copies    map[card.Kind]int
}

// Section is the cards of one kind.
type Section struct {
	Kind  card.Kind
	Cards []*card.Instance
}

// Gallery owns the demo cards. Text and indicator edits fan out to every
// card, as do terminal resizes.
type Gallery struct {
	env       *card.Env
	composer  *card.Composer
	sections  []Section
	cardCells int
	maxCells  int
	closed    bool
}

// NewGallery mounts every card the spec asks for. Sections appear in
// measure.Kinds order; kinds with no copies are left out.
func NewGallery(env *card.Env, spec Spec) *Gallery {
	if env == nil {
		env = card.DefaultEnv()
	}
	if spec.CardCells < MinCardCells {
		spec.CardCells = MinCardCells
	}
	g := &Gallery{
		env:       env,
		composer:  card.NewComposer(env),
		cardCells: spec.CardCells,
		maxCells:  spec.CardCells,
	}
	for _, kind := range measure.Kinds {
		n := spec.Copies[kind]
		if n <= 0 {
			continue
		}
		text := spec.Text
		if kind == card.TextImage && spec.ImageText != "" {
			text = spec.ImageText
		}
		sec := Section{Kind: kind}
		for i := 0; i < n; i++ {
			props := card.Props{
				Text:      text,
				Indicator: card.Indicator(spec.Indicator),
				Compact:   spec.Compact,
			}
			sec.Cards = append(sec.Cards, card.New(kind, props, env, spec.CardCells))
		}
		g.sections = append(g.sections, sec)
	}
	debug.Logf("gallery", "mounted %d cards at %d cells", g.Len(), g.cardCells)
	return g
}

// Sections returns the card sections.
func (g *Gallery) Sections() []Section { return g.sections }

// Len returns the number of cards.
func (g *Gallery) Len() int {
	n := 0
	for _, s := range g.sections {
		n += len(s.Cards)
	}
	return n
}

// CardCells returns the current card width.
func (g *Gallery) CardCells() int { return g.cardCells }

func (g *Gallery) each(fn func(*card.Instance)) {
	if g.closed {
		return
	}
	for _, s := range g.sections {
		for _, c := range s.Cards {
			fn(c)
		}
	}
}

// SetText replaces the text of every card.
func (g *Gallery) SetText(s string) {
	g.each(func(c *card.Instance) { c.SetText(s) })
}

// SetIndicator replaces the badge value of every card.
func (g *Gallery) SetIndicator(v int) {
	v = card.ClampIndicator(v)
	g.each(func(c *card.Instance) {
		if c.Badge().Value() != v {
			c.SetIndicator(v)
		}
	})
}

// Fit narrows the cards to fit a terminal width, never beyond the
// configured card width.
func (g *Gallery) Fit(termCells int) {
	cells := g.maxCells
	if termCells < cells {
		cells = termCells
	}
	if cells < MinCardCells {
		cells = MinCardCells
	}
	if cells == g.cardCells {
		return
	}
	g.cardCells = cells
	g.each(func(c *card.Instance) { c.Resize(cells) })
}

// Stats sums the pipeline runs and shadow measurements of every card.
func (g *Gallery) Stats() (runs, shadows int) {
	for _, s := range g.sections {
		for _, c := range s.Cards {
			runs += c.Runs()
			shadows += c.ShadowMeasurements()
		}
	}
	return runs, shadows
}

// Render lays the sections out for a terminal termCells wide, wrapping
// each section's cards into rows.
func (g *Gallery) Render(termCells int, headerStyle lipgloss.Style) string {
	perRow := 1
	if g.cardCells > 0 {
		perRow = (termCells + 1) / (g.cardCells + 1)
	}
	if perRow < 1 {
		perRow = 1
	}

	var b strings.Builder
	for i, s := range g.sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d)", s.Kind, len(s.Cards))))
		b.WriteString("\n")
		for start := 0; start < len(s.Cards); start += perRow {
			end := start + perRow
			if end > len(s.Cards) {
				end = len(s.Cards)
			}
			views := make([]string, 0, 2*(end-start))
			for j, c := range s.Cards[start:end] {
				if j > 0 {
					views = append(views, " ")
				}
				views = append(views, g.composer.Compose(c).View)
			}
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, views...))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Close disposes every card.
func (g *Gallery) Close() {
	if g.closed {
		return
	}
	for _, s := range g.sections {
		for _, c := range s.Cards {
			c.Dispose()
		}
	}
	g.closed = true
	debug.Logf("gallery", "closed")
}
