package session

import (
	"fmt"
	"math"
	"time"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Total     int // questions in the session
	Answered  int
	Correct   int
	Incorrect int
	Percent   int // rounded share of answered questions that were correct
	Elapsed   time.Duration
	History   []AnswerRecord
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(s *Session) *Summary {
	answered := len(s.Records)
	history := make([]AnswerRecord, answered)
	copy(history, s.Records)

	return &Summary{
		Total:     len(s.Questions),
		Answered:  answered,
		Correct:   s.Score,
		Incorrect: answered - s.Score,
		Percent:   Percent(s.Score, answered),
		Elapsed:   s.Elapsed(),
		History:   history,
	}
}

// Clock returns the elapsed time as MM:SS.
func (sm *Summary) Clock() string {
	return FormatClock(sm.Elapsed)
}

// Percent returns correct/total as a rounded integer percentage. Zero total
// yields 0.
func Percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100 / float64(total)))
}

// FormatClock formats d as MM:SS, truncating to whole seconds. Minutes are
// not wrapped into hours.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
