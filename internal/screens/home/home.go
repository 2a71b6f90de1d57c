package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/capitolquiz/internal/questiongen"
	"github.com/abhisek/capitolquiz/internal/router"
	"github.com/abhisek/capitolquiz/internal/screen"
	"github.com/abhisek/capitolquiz/internal/ui/components"
)

// RosterInfo describes the loaded roster for the stats bar.
type RosterInfo struct {
	Senators  int
	States    int
	Portraits int
	Source    string
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	info       RosterInfo
	questions  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. startQuiz builds the quiz screen for a
// difficulty; questions is the quiz length shown in the menu.
func New(info RosterInfo, questions int, startQuiz func(questiongen.Difficulty) screen.Screen) *HomeScreen {
	menuLabels := []string{"PLAY EASY", "PLAY HARD", "EXIT GAME"}

	play := func(d questiongen.Difficulty) func() tea.Cmd {
		return func() tea.Cmd {
			s := startQuiz(d)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		}
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Detail: "last names and typos accepted", Action: play(questiongen.DifficultyEasy)},
		{Label: menuLabels[1], Detail: "exact full answers only", Action: play(questiongen.DifficultyHard)},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		info:       info,
		questions:  questions,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + 6
	compact := termHeight < 28 || width < 90

	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.info, h.questions, cw, compact),
	}
	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
		sections = append(sections, renderDetail(h.menu.Items[h.menu.Selected].Detail, cw))
	}

	return renderChamberFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
