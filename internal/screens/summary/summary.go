package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitolquiz/internal/questiongen"
	"github.com/abhisek/capitolquiz/internal/router"
	"github.com/abhisek/capitolquiz/internal/screen"
	"github.com/abhisek/capitolquiz/internal/session"
	"github.com/abhisek/capitolquiz/internal/ui/layout"
	"github.com/abhisek/capitolquiz/internal/ui/theme"
)

// SummaryScreen displays the result of a finished (or abandoned) quiz.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	heading := "Quiz complete!"
	if sum.Answered < sum.Total {
		heading = "Quiz ended early"
	}
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true), heading))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Time: %s", sum.Clock())))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Answered: %d/%d      Correct: %d      Incorrect: %d      Score: %d%%",
		sum.Answered, sum.Total, sum.Correct, sum.Incorrect, sum.Percent)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), stats))
	b.WriteString("\n\n")

	if len(sum.History) == 0 {
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 70), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answers")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Leave room for the heading block above.
	rows := max(height-12, 1)
	history := sum.History
	if len(history) > rows {
		history = history[len(history)-rows:]
	}
	lineWidth := min(width-8, 90)
	for _, rec := range history {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, historyLine(rec, lineWidth)))
		b.WriteString("\n")
	}

	return b.String()
}

// historyLine renders one answer as "✓ prompt → answer".
func historyLine(rec session.AnswerRecord, width int) string {
	mark := theme.Correct.Render("✓")
	if !rec.Correct {
		mark = theme.Incorrect.Render("✗")
	}

	detail := rec.Answer
	switch {
	case !rec.Correct && rec.RawInput != "":
		detail = fmt.Sprintf("%s (you said %q)", rec.Answer, rec.RawInput)
	case rec.AcceptedAs == questiongen.ChannelLastName:
		detail += " (last name)"
	case rec.AcceptedAs == questiongen.ChannelMisspelling:
		detail += " (close enough)"
	}

	line := fmt.Sprintf("%s %s → %s", mark, rec.Prompt, detail)
	return lipgloss.NewStyle().Foreground(theme.Text).MaxWidth(max(width, 10)).Render(line)
}
