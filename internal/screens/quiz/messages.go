package quiz

import (
	"time"

	"github.com/abhisek/capitolquiz/internal/questiongen"
)

// poolReadyMsg is sent when the question pool has been built.
type poolReadyMsg struct {
	Questions []*questiongen.Question
	Err       error
}

// timerTickMsg is sent every second to refresh the elapsed clock.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the player dismisses the answer feedback.
type feedbackDoneMsg struct{}

// quizEndMsg is sent when the quiz finishes or the player quits early.
type quizEndMsg struct{}
