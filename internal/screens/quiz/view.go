package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitolquiz/internal/questiongen"
	"github.com/abhisek/capitolquiz/internal/ui/components"
	"github.com/abhisek/capitolquiz/internal/ui/theme"
)

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

// renderQuestionView renders the progress line, the prompt and the input.
func (s *QuizScreen) renderQuestionView(width, height int) string {
	q := s.sess.Current()
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	pos, total := s.sess.Position(), s.sess.Len()
	bar := components.NewProgressBar(
		fmt.Sprintf("  Question %d/%d", pos+1, total),
		float64(pos)/float64(total),
		false,
		max(width-4, 20),
	)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if q.Presentation.ShowsPortrait() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderPortrait(q.PortraitRef)))
		b.WriteString("\n\n")
	}

	b.WriteString(centered(width).Foreground(theme.Text).Bold(true).Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(centered(width).Render("Answer: " + s.input.View()))
	b.WriteString("\n\n")

	b.WriteString(centered(width).Inherit(theme.Hint).Render(modeHint(q)))

	return b.String()
}

// renderPortrait draws a placeholder frame holding the portrait reference.
func renderPortrait(ref string) string {
	return theme.Portrait.Render("[ portrait ]\n" + ref)
}

// modeHint tells the player which answer forms are accepted.
func modeHint(q *questiongen.Question) string {
	switch {
	case q.Allows(questiongen.ModeLastName):
		return "Full or last name accepted. Small typos are forgiven."
	case q.Allows(questiongen.ModeFuzzy):
		return "Small typos are forgiven."
	}
	return "Exact full answer required."
}

// renderFeedback renders the verdict for the last answer.
func (s *QuizScreen) renderFeedback(width int) string {
	rec := s.last
	var b strings.Builder
	b.WriteString("\n\n")

	if rec.Correct {
		b.WriteString(centered(width).Inherit(theme.Correct).Render("Correct!"))
	} else {
		b.WriteString(centered(width).Inherit(theme.Incorrect).Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(centered(width).Foreground(theme.TextDim).Render(
			fmt.Sprintf("Correct answer: %s", rec.Answer)))
	}
	b.WriteString("\n\n")

	if rec.Feedback != "" {
		fb := lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.Text).Render(rec.Feedback)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fb))
		b.WriteString("\n\n")
	}

	next := "Press any key for the next question..."
	if s.sess.Completed {
		next = "Press any key to see your results..."
	}
	b.WriteString(centered(width).Foreground(theme.TextDim).Render(next))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width).Foreground(theme.Text).Bold(true).Render("End quiz early?"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.TextDim).Render("Unanswered questions are left out of your score."))
	b.WriteString("\n\n")
	b.WriteString(centered(width).Foreground(theme.Success).Render("[Y] Yes, end quiz"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return centered(width).Foreground(theme.TextDim).Render("\n\n\n  Drafting questions...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return centered(width).Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
