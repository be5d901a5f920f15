package styles

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorRed     = lipgloss.Color("#FF5555")
	ColorGreen   = lipgloss.Color("#50FA7B")
	ColorYellow  = lipgloss.Color("#F1FA8C")
	ColorPurple  = lipgloss.Color("#BD93F9")
	ColorCyan    = lipgloss.Color("#8BE9FD")
	ColorPink    = lipgloss.Color("#FF79C6")
	ColorGray    = lipgloss.Color("#6272A4")
	ColorWhite   = lipgloss.Color("#F8F8F2")
	ColorSubtle  = lipgloss.Color("#44475A")
	ColorBgLight = lipgloss.Color("#44475A")
)

// Styles contains all the lipgloss styles for the UI
type Styles struct {
	Title       lipgloss.Style
	Endpoint    lipgloss.Style
	Dimmed      lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Spinner     lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	Selected    lipgloss.Style
	Border      lipgloss.Style
}

// DefaultStyles returns the default styles for the UI
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple),

		Endpoint: lipgloss.NewStyle().
			Foreground(ColorPink),

		Dimmed: lipgloss.NewStyle().
			Foreground(ColorGray),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorGray),

		Error: lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(ColorGreen),

		Spinner: lipgloss.NewStyle().
			Foreground(ColorYellow),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorSubtle).
			Padding(0, 1),

		TableCell: lipgloss.NewStyle().
			Foreground(ColorWhite).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Background(ColorBgLight).
			Foreground(ColorWhite),

		Border: lipgloss.NewStyle().
			Foreground(ColorSubtle),
	}
}
