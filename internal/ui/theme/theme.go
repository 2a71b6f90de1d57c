package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: navy and parchment with flag red and gold accents.
var (
	Primary   = lipgloss.Color("#3B82F6") // Capitol Blue
	Secondary = lipgloss.Color("#E2C275") // Gold
	Accent    = lipgloss.Color("#EF4444") // Flag Red
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1533") // Navy
	BgCard    = lipgloss.Color("#17213F") // Dark Navy
	Border    = lipgloss.Color("#334155") // Slate
)

// Party colors.
var (
	Democrat    = lipgloss.Color("#60A5FA")
	Republican  = lipgloss.Color("#F87171")
	Independent = lipgloss.Color("#C084FC")
)

// PartyColor returns the display color for a party name.
func PartyColor(party string) color.Color {
	switch party {
	case "Democrat":
		return Democrat
	case "Republican":
		return Republican
	case "Independent":
		return Independent
	default:
		return Text
	}
}

// Text styles
var (
	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Portrait = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Secondary).
			Foreground(TextDim).
			Padding(1, 3).
			Align(lipgloss.Center)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
