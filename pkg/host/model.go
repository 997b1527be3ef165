package host

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/cardfit/pkg/card"
)

type focus int

const (
	focusText focus = iota
	focusIndicator
	focusGallery
)

// settingsHeight is the settings panel height: text area, indicator
// field, their labels, the panel border and the status bar.
const settingsHeight = 10

// Styles holds the host chrome styles.
type Styles struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Panel   lipgloss.Style
	Focused lipgloss.Style
	Status  lipgloss.Style
}

// DefaultStyles returns the host chrome styles. Monochrome drops colors.
func DefaultStyles(monochrome bool) Styles {
	if monochrome {
		return Styles{
			Header:  lipgloss.NewStyle().Bold(true),
			Label:   lipgloss.NewStyle(),
			Panel:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
			Focused: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1),
			Status:  lipgloss.NewStyle(),
		}
	}
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")),
		Panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1),
		Focused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#7D56F4")).Padding(0, 1),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// Model is the interactive host: a settings panel editing the shared text
// and indicator above a scrolling gallery of cards.
type Model struct {
	gallery   *Gallery
	styles    Styles
	text      textarea.Model
	indicator textinput.Model
	viewport  viewport.Model
	focus     focus
	width     int
	height    int
	ready     bool
	quitting  bool
}

// NewModel returns a host model over g, with the editors seeded with the
// gallery's initial text and indicator.
func NewModel(g *Gallery, text string, indicator int, styles Styles) Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 4000
	ta.SetHeight(3)
	ta.SetValue(text)
	ta.Focus()

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 8
	ti.SetValue(strconv.Itoa(indicator))

	return Model{
		gallery:   g,
		styles:    styles,
		text:      ta,
		indicator: ti,
		viewport:  viewport.New(0, 0),
	}
}

// Run starts the interactive host and blocks until the user quits. The
// gallery is closed on return.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	defer m.gallery.Close()
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("running host: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.gallery.Close()
			return m, tea.Quit
		case "tab":
			return m.setFocus((m.focus + 1) % 3)
		case "shift+tab":
			return m.setFocus((m.focus + 2) % 3)
		}
		return m.updateFocused(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.text.SetWidth(msg.Width - 6)
		m.indicator.Width = 10
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - settingsHeight
		if m.viewport.Height < 1 {
			m.viewport.Height = 1
		}
		m.gallery.Fit(msg.Width)
		m.ready = true
		m.refreshViewport()
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m Model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.text.Blur()
	m.indicator.Blur()
	var cmd tea.Cmd
	switch f {
	case focusText:
		cmd = m.text.Focus()
	case focusIndicator:
		cmd = m.indicator.Focus()
	}
	return m, cmd
}

// updateFocused routes msg to the focused widget and pushes any edit into
// the gallery.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusText:
		before := m.text.Value()
		m.text, cmd = m.text.Update(msg)
		if v := m.text.Value(); v != before {
			m.gallery.SetText(v)
			m.refreshViewport()
		}
	case focusIndicator:
		before := m.indicator.Value()
		m.indicator, cmd = m.indicator.Update(msg)
		if v := m.indicator.Value(); v != before {
			n := card.ParseIndicator(v)
			m.gallery.SetIndicator(n)
			if canonical := strconv.Itoa(n); canonical != v && !partialIndicator(v) {
				m.indicator.SetValue(canonical)
			}
			m.refreshViewport()
		}
	case focusGallery:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// partialIndicator reports whether v is input still being typed: empty or a
// lone sign.
func partialIndicator(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "-", "+":
		return true
	}
	return false
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.gallery.Render(m.width, m.styles.Header))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading cards..."
	}

	box := m.styles.Panel
	if m.focus != focusGallery {
		box = m.styles.Focused
	}
	settings := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Label.Render("Text:"),
		m.text.View(),
		m.styles.Label.Render("Indicator:")+" "+m.indicator.View(),
	)
	settingsBox := box.Width(m.width - 2).Render(settings)

	runs, shadows := m.gallery.Stats()
	status := m.styles.Status.Render(fmt.Sprintf(
		"tab focus • ↑/↓ scroll gallery • esc quit • %d cards, %d runs, %d shadow layouts",
		m.gallery.Len(), runs, shadows))

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), settingsBox, status)
}

// Gallery returns the hosted gallery.
func (m Model) Gallery() *Gallery { return m.gallery }

// Focused returns the name of the focused widget.
func (m Model) Focused() string {
	switch m.focus {
	case focusIndicator:
		return "indicator"
	case focusGallery:
		return "gallery"
	default:
		return "text"
	}
}
