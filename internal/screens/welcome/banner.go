package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitolquiz/internal/ui/theme"
)

const bannerArt = ` ╔═╗╔═╗╔═╗╦╔╦╗╔═╗╦    ╔═╗ ╦ ╦╦╔═╗
 ║  ╠═╣╠═╝║ ║ ║ ║║    ║═╬╗║ ║║╔═╝
 ╚═╝╩ ╩╩  ╩ ╩ ╚═╝╩═╝  ╚═╝╚╚═╝╩╚═╝`

const bannerCompact = "C A P I T O L Q U I Z"

// RenderBanner returns the title banner in the accent colors. Narrow
// terminals get the compact form.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < lipgloss.Width(bannerArt)+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
