package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitolquiz/internal/ui/theme"
)

const titleFull = `   ╔═╗╔═╗╔═╗╦╔╦╗╔═╗╦    ╔═╗ ╦ ╦╦╔═╗
   ║  ╠═╣╠═╝║ ║ ║ ║║    ║═╬╗║ ║║╔═╝
   ╚═╝╩ ╩╩  ╩ ╩ ╚═╝╩═╝  ╚═╝╚╚═╝╩╚═╝`

const titleCompact = "C · A · P · I · T · O · L   Q · U · I · Z"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 60)
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders roster facts in a bordered box matching content width.
func renderStatsBar(info RosterInfo, questions, cw int, compact bool) string {
	senStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	stateStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	qStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			senStyle.Render(fmt.Sprintf("★%d", info.Senators)),
			stateStyle.Render(fmt.Sprintf("◆%d", info.States)),
			qStyle.Render(fmt.Sprintf("?%d", questions)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			senStyle.Render(fmt.Sprintf("★ %d SENATORS", info.Senators)),
			stateStyle.Render(fmt.Sprintf("◆ %d STATES", info.States)),
			qStyle.Render(fmt.Sprintf("? %d PER QUIZ", questions)),
		)
		if info.Source != "" {
			stats += "\n" + dimStyle.Render(fmt.Sprintf("roster: %s · %d portraits", info.Source, info.Portraits))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Secondary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	buttons := make([]string, 0, len(items))
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for small terminals.
func renderMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, 0, len(items))
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Secondary).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderDetail renders a dim one-line description of the selected item.
func renderDetail(detail string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(detail)
}

// renderChamberFrame wraps content in a double-border frame, centered
// vertically and horizontally within the given dimensions.
func renderChamberFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(max(width-2, 0)).   // account for border chars
		Height(max(height-2, 0)). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
