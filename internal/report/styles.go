package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for per-word headers.
	Header lipgloss.Style

	// SubHeader is used for secondary information lines.
	SubHeader lipgloss.Style

	// Stage styles the stage name column.
	Stage lipgloss.Style

	// Output styles the final ciphertext row.
	Output lipgloss.Style

	TableHeader lipgloss.Style
	Border      lipgloss.Style

	// Warn styles alphabet mismatch notices.
	Warn lipgloss.Style

	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Stage:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Output: lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
