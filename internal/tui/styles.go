package tui

import "github.com/charmbracelet/lipgloss"

// Bullsharks palette.
var (
	Navy   = lipgloss.Color("#0B2545")
	Teal   = lipgloss.Color("#13A89E")
	Gold   = lipgloss.Color("#F2C14E")
	Coral  = lipgloss.Color("#E4572E")
	Muted  = lipgloss.Color("#8D99AE")
	Bright = lipgloss.Color("#F4F5F6")
)

// Styles groups every lipgloss style the model renders with.
type Styles struct {
	Logo     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Row      lipgloss.Style
	Podium   lipgloss.Style
	NoData   lipgloss.Style
	Loading  lipgloss.Style
	Error    lipgloss.Style
	Button   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the standard theme.
func DefaultStyles() Styles {
	return Styles{
		Logo:     lipgloss.NewStyle().Bold(true).Foreground(Bright).Background(Navy).Padding(0, 2),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Teal),
		Subtitle: lipgloss.NewStyle().Italic(true).Foreground(Muted),
		Header:   lipgloss.NewStyle().Bold(true).Underline(true),
		Row:      lipgloss.NewStyle(),
		Podium:   lipgloss.NewStyle().Bold(true).Foreground(Gold),
		NoData:   lipgloss.NewStyle().Foreground(Muted),
		Loading:  lipgloss.NewStyle().Foreground(Teal),
		Error:    lipgloss.NewStyle().Foreground(Coral),
		Button:   lipgloss.NewStyle().Bold(true).Foreground(Bright).Background(Teal).Padding(0, 1),
		Help:     lipgloss.NewStyle().Foreground(Muted),
	}
}
