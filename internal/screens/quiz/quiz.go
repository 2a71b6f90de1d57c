// Package quiz is the screen that plays one session: it builds the question
// pool, collects typed answers and hands over to the summary when done.
package quiz

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/capitolquiz/internal/questiongen"
	"github.com/abhisek/capitolquiz/internal/roster"
	"github.com/abhisek/capitolquiz/internal/router"
	"github.com/abhisek/capitolquiz/internal/screen"
	"github.com/abhisek/capitolquiz/internal/screens/summary"
	"github.com/abhisek/capitolquiz/internal/session"
	"github.com/abhisek/capitolquiz/internal/ui/components"
	"github.com/abhisek/capitolquiz/internal/ui/layout"
)

// Config holds what a quiz needs to run.
type Config struct {
	Roster              *roster.Roster
	Generator           session.Generator
	Difficulty          questiongen.Difficulty
	Questions           int
	AttemptsPerQuestion int
	Log                 *zap.Logger
	Now                 func() time.Time // nil means time.Now
}

// QuizScreen implements screen.Screen for an active quiz.
type QuizScreen struct {
	cfg   Config
	sess  *session.Session
	input components.TextInput

	last               *session.AnswerRecord
	showingFeedback    bool
	showingQuitConfirm bool
	ended              bool
	elapsed            time.Duration
	errMsg             string
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
	_ screen.StatusProvider  = (*QuizScreen)(nil)
	_ screen.BackHandler     = (*QuizScreen)(nil)
)

// New creates a QuizScreen. The pool is built when the screen is pushed.
func New(cfg Config) *QuizScreen {
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	if cfg.AttemptsPerQuestion <= 0 {
		cfg.AttemptsPerQuestion = session.DefaultAttemptsPerQuestion
	}
	return &QuizScreen{
		cfg:   cfg,
		input: newAnswerInput(),
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("Type your answer...", 60)
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(
		s.buildPool(),
		s.input.Init(),
	)
}

func (s *QuizScreen) Title() string {
	return s.cfg.Difficulty.DisplayName() + " Quiz"
}

// Status shows the running score in the header.
func (s *QuizScreen) Status() string {
	if s.sess == nil {
		return ""
	}
	return fmt.Sprintf("Score %d/%d  %s", s.sess.Score, len(s.sess.Records), session.FormatClock(s.elapsed))
}

// HandlesBack reports whether Esc should reach the screen instead of
// popping it. Once the quiz is running, Esc opens the quit confirmation.
func (s *QuizScreen) HandlesBack() bool {
	return s.sess != nil && s.errMsg == ""
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.sess == nil:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.sess == nil:
		return renderLoading(width)
	case s.showingQuitConfirm:
		return renderQuitConfirm(width)
	case s.showingFeedback:
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width, height)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case poolReadyMsg:
		return s.handlePoolReady(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case quizEndMsg:
		return s.handleQuizEnd()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.acceptingInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) acceptingInput() bool {
	return s.sess != nil && !s.sess.Completed && !s.showingFeedback && !s.showingQuitConfirm && !s.ended
}

// buildPool generates the session's questions off the update loop.
func (s *QuizScreen) buildPool() tea.Cmd {
	cfg := s.cfg
	return func() tea.Msg {
		qs, err := session.BuildPool(cfg.Generator, cfg.Difficulty, cfg.Roster, cfg.Questions, cfg.AttemptsPerQuestion)
		return poolReadyMsg{Questions: qs, Err: err}
	}
}

func (s *QuizScreen) handlePoolReady(msg poolReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.cfg.Log.Warn("question pool failed", zap.Error(msg.Err))
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	sess, err := session.New(s.cfg.Difficulty, msg.Questions, s.cfg.Now)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.sess = sess
	s.cfg.Log.Info("quiz started",
		zap.String("session", sess.ID),
		zap.String("difficulty", string(sess.Difficulty)),
		zap.Int("questions", sess.Len()))
	return s, tickCmd()
}

func (s *QuizScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.ended {
		return s, nil
	}
	s.elapsed = s.sess.Elapsed()
	if s.sess.Completed {
		return s, nil
	}
	return s, tickCmd()
}

func (s *QuizScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.sess == nil {
		return s, nil
	}
	s.showingFeedback = false
	if s.sess.Completed {
		return s, func() tea.Msg { return quizEndMsg{} }
	}
	s.input = newAnswerInput()
	return s, s.input.Init()
}

func (s *QuizScreen) handleQuizEnd() (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.ended {
		return s, nil
	}
	s.ended = true
	sum := session.BuildSummary(s.sess)
	s.cfg.Log.Info("quiz ended",
		zap.String("session", s.sess.ID),
		zap.Int("answered", sum.Answered),
		zap.Int("correct", sum.Correct),
		zap.Duration("elapsed", sum.Elapsed))

	next := summary.New(sum)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.sess == nil || s.ended {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return quizEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer grades the typed answer. Blank input is ignored so a stray
// Enter does not burn a question.
func (s *QuizScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	raw := s.input.Value()
	if strings.TrimSpace(raw) == "" {
		return s, nil
	}

	rec, err := s.sess.Submit(raw)
	if err != nil {
		s.cfg.Log.Error("submit answer", zap.Error(err))
		return s, nil
	}
	s.cfg.Log.Debug("answer graded",
		zap.String("question", rec.QuestionID),
		zap.Bool("correct", rec.Correct),
		zap.String("accepted_as", string(rec.AcceptedAs)),
		zap.String("rejection", string(rec.Rejection)))

	s.input.Submit(rec.Correct)
	s.last = &rec
	s.showingFeedback = true
	s.elapsed = s.sess.Elapsed()
	return s, nil
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
