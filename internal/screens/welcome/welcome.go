// Package welcome renders the splash shown before the home menu.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitolquiz/internal/router"
	"github.com/abhisek/capitolquiz/internal/screen"
	"github.com/abhisek/capitolquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	domeEnd      = 600 * time.Millisecond
	bannerEnd    = 1200 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const domeArt = `        ┃
       ╭┸╮
     ╭─┴─┴─╮
   ╭─┴─────┴─╮
  ┌┴─────────┴┐
  │ ║ ║ ║ ║ ║ │
 ═╧═══════════╧═`

// stars twinkle above the dome once it is drawn
var starFrames = []string{"★ ☆ ★", "☆ ★ ☆"}

const tagline = "How well do you know the Senate?"

type tickMsg time.Time

// WelcomeScreen shows a short splash, then hands over to the home screen on
// the first keypress.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	dome := lipgloss.NewStyle().Foreground(theme.Text).Render(domeArt)
	if w.elapsed >= domeEnd {
		stars := starFrames[w.tickCount%len(starFrames)]
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render(stars))
	} else {
		sections = append(sections, "")
	}
	sections = append(sections, dome)

	if w.elapsed >= bannerEnd {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}
