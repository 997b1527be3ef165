package magetasks

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Out receives task output.
var Out io.Writer = os.Stdout

var (
	h1Style      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Border(lipgloss.DoubleBorder(), false, false, true, false).Width(80).Align(lipgloss.Center)
	h2Style      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CCCCCC"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

// PrintH1Header prints a top-level header.
func PrintH1Header(title string) {
	fmt.Fprintf(Out, "\n%s\n\n", h1Style.Render(title))
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintf(Out, "\n%s\n\n", h2Style.Render("=== "+title+" ==="))
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Fprintln(Out, successStyle.Render("✓ "+msg))
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Fprintln(Out, warningStyle.Render("! "+msg))
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Fprintln(Out, errorStyle.Render("✗ "+msg))
}
