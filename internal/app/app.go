// Package app hosts the root Bubble Tea model and wires the screens.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/capitolquiz/internal/questiongen"
	"github.com/abhisek/capitolquiz/internal/roster"
	"github.com/abhisek/capitolquiz/internal/router"
	"github.com/abhisek/capitolquiz/internal/screen"
	"github.com/abhisek/capitolquiz/internal/screens/home"
	"github.com/abhisek/capitolquiz/internal/screens/quiz"
	"github.com/abhisek/capitolquiz/internal/screens/welcome"
	"github.com/abhisek/capitolquiz/internal/session"
	"github.com/abhisek/capitolquiz/internal/ui/layout"
)

// Options holds the dependencies injected into the TUI.
type Options struct {
	Roster       *roster.Roster
	RosterSource string // shown on the home screen
	Generator    session.Generator

	Questions           int
	AttemptsPerQuestion int

	// Difficulty, when set, starts a quiz straight away instead of showing
	// the splash and menu.
	Difficulty questiongen.Difficulty

	Log *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model. Without a difficulty it opens on the
// splash screen, which hands over to the home menu.
func newAppModel(opts Options) AppModel {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	startQuiz := func(d questiongen.Difficulty) screen.Screen {
		return quiz.New(quiz.Config{
			Roster:              opts.Roster,
			Generator:           opts.Generator,
			Difficulty:          d,
			Questions:           opts.Questions,
			AttemptsPerQuestion: opts.AttemptsPerQuestion,
			Log:                 opts.Log.Named("quiz"),
		})
	}

	info := home.RosterInfo{
		Senators:  opts.Roster.Len(),
		States:    len(opts.Roster.States()),
		Portraits: len(opts.Roster.WithPortrait()),
		Source:    opts.RosterSource,
	}
	homeFactory := func() screen.Screen {
		return home.New(info, opts.Questions, startQuiz)
	}

	if opts.Difficulty != "" {
		r := router.New(homeFactory())
		r.Push(startQuiz(opts.Difficulty))
		return AppModel{router: r}
	}
	return AppModel{router: router.New(welcome.New(homeFactory))}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.BackHandler); ok && h.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// footerHints prefers the active screen's own hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
