package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/capitolquiz/internal/questiongen"
	"github.com/abhisek/capitolquiz/internal/session"
	"github.com/abhisek/capitolquiz/internal/ui/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated questions with their answers",
	Long: `Generate a question pool and print every question with its accepted
answers and answer modes. Nothing is graded or stored.

Useful for checking a roster file or a seed before playing. With --kind a
single template kind is generated regardless of difficulty.`,
	RunE: runPreview,
}

func init() {
	addQuizFlags(previewCmd)
	previewCmd.Flags().String("kind", "", "Only generate this template kind")
}

var (
	previewHeading = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	previewLabel   = lipgloss.NewStyle().Foreground(theme.TextDim)
	previewAnswer  = lipgloss.NewStyle().Foreground(theme.Success)
	previewFailure = lipgloss.NewStyle().Foreground(theme.Error)
)

func runPreview(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	r, source, err := rt.loadRoster(cmd.Context())
	if err != nil {
		return err
	}

	d := rt.cfg.Difficulty()
	count := rt.cfg.Quiz.Questions
	gen := rt.newGenerator()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Roster: %s (%d senators)\n", source, r.Len())

	kindVal, _ := cmd.Flags().GetString("kind")
	if kindVal != "" {
		kind := questiongen.TemplateKind(kindVal)
		fmt.Fprintf(out, "Generating %d %s questions (%s)...\n\n", count, kind, d.DisplayName())
		for i := 1; i <= count; i++ {
			q, err := gen.GenerateKind(kind, d, r)
			if err != nil {
				fmt.Fprintln(out, previewFailure.Render(fmt.Sprintf("Question %d: %v", i, err)))
				if !questiongen.IsRetryable(err) {
					return err
				}
				continue
			}
			printQuestion(out, i, count, q)
		}
		return nil
	}

	fmt.Fprintf(out, "Generating %d questions (%s)...\n\n", count, d.DisplayName())
	pool, err := session.BuildPool(gen, d, r, count, rt.cfg.Quiz.AttemptsPerQuestion)
	if err != nil {
		return err
	}
	for i, q := range pool {
		printQuestion(out, i+1, len(pool), q)
	}
	return nil
}

func printQuestion(w io.Writer, i, n int, q *questiongen.Question) {
	fmt.Fprintln(w, previewHeading.Render(fmt.Sprintf("── Question %d/%d ── %s · %s", i, n, q.Kind, q.Presentation)))
	fmt.Fprintln(w, q.Text)
	if q.Presentation.ShowsPortrait() {
		fmt.Fprintln(w, previewLabel.Render("Portrait: ")+q.PortraitRef)
	}
	answers := make([]string, len(q.Answers))
	for j, a := range q.Answers {
		style := previewAnswer
		if q.Subject == questiongen.SubjectParty {
			style = style.Foreground(theme.PartyColor(a))
		}
		answers[j] = style.Render(a)
	}
	fmt.Fprintln(w, previewLabel.Render("Answers:  ")+strings.Join(answers, " | "))

	modes := make([]string, len(q.Modes))
	for j, m := range q.Modes {
		modes[j] = string(m)
	}
	fmt.Fprintln(w, previewLabel.Render("Modes:    ")+strings.Join(modes, ", "))
	fmt.Fprintln(w)
}
