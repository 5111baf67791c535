package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Terminal renders notifications to a writer, colored by severity.
type Terminal struct {
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) Notify(message string, severity Severity) {
	var rendered string
	switch severity {
	case SeveritySuccess:
		rendered = successStyle.Render("✓ " + message)
	case SeverityError:
		rendered = errorStyle.Render("✗ " + message)
	default:
		rendered = infoStyle.Render("• " + message)
	}
	fmt.Fprintln(t.out, rendered)
}
