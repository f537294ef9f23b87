package report

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Tilde   = "~"
)

type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	skipped lipgloss.Style
	muted   lipgloss.Style
	fatal   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(Iris),
		success: r.NewStyle().Foreground(Green),
		failure: r.NewStyle().Foreground(Red),
		skipped: r.NewStyle().Foreground(Yellow),
		muted:   r.NewStyle().Foreground(Slate),
		fatal: r.NewStyle().Bold(true).Foreground(Red).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Red).PaddingLeft(1),
	}
}
