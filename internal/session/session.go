// Package session runs a fixed-length quiz: it owns the question pool, grades
// answers as they arrive and summarizes the result.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/capitolquiz/internal/questiongen"
)

var (
	// ErrSessionComplete is returned when an answer arrives after the last
	// question was answered.
	ErrSessionComplete = errors.New("session is complete")

	// ErrNoQuestions is returned when a session is created without questions.
	ErrNoQuestions = errors.New("session has no questions")

	// ErrWrongQuestion is returned when a verdict is for a question other
	// than the current one.
	ErrWrongQuestion = errors.New("verdict is not for the current question")
)

// AnswerRecord is one graded submission. Records are never modified after
// they are appended.
type AnswerRecord struct {
	QuestionID string
	Prompt     string
	RawInput   string
	Correct    bool
	AcceptedAs questiongen.Channel
	Rejection  questiongen.Rejection
	Answer     string // the canonical answer matched, or the first expected one
	Feedback   string
	AnsweredAt time.Time
}

// Session is a single play-through over a fixed list of questions. It is
// owned by one caller and not safe for concurrent use.
type Session struct {
	ID         string
	Difficulty questiongen.Difficulty
	Questions  []*questiongen.Question
	Records    []AnswerRecord
	Score      int

	StartedAt time.Time
	EndedAt   time.Time // zero until Completed
	Completed bool

	cursor int
	now    func() time.Time
}

// New starts a session over questions. now supplies timestamps; nil means
// time.Now.
func New(d questiongen.Difficulty, questions []*questiongen.Question, now func() time.Time) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if now == nil {
		now = time.Now
	}
	return &Session{
		ID:         uuid.NewString(),
		Difficulty: d,
		Questions:  questions,
		Records:    make([]AnswerRecord, 0, len(questions)),
		StartedAt:  now(),
		now:        now,
	}, nil
}

// Current returns the question awaiting an answer, or nil once complete.
func (s *Session) Current() *questiongen.Question {
	if s.Completed {
		return nil
	}
	return s.Questions[s.cursor]
}

// Position returns the zero-based index of the current question.
func (s *Session) Position() int { return s.cursor }

// Len returns the number of questions in the session.
func (s *Session) Len() int { return len(s.Questions) }

// Submit grades raw against the current question and records the verdict.
func (s *Session) Submit(raw string) (AnswerRecord, error) {
	q := s.Current()
	if q == nil {
		return AnswerRecord{}, ErrSessionComplete
	}
	return s.Record(questiongen.CheckAnswer(q, raw))
}

// Record appends a verdict for the current question and advances. When the
// last question is answered the session is finalized.
func (s *Session) Record(v questiongen.Verdict) (AnswerRecord, error) {
	if s.Completed {
		return AnswerRecord{}, ErrSessionComplete
	}
	q := s.Questions[s.cursor]
	if v.QuestionID != q.ID {
		return AnswerRecord{}, fmt.Errorf("%w: got %s, want %s", ErrWrongQuestion, v.QuestionID, q.ID)
	}

	answer := v.MatchedAnswer
	if answer == "" && len(q.Answers) > 0 {
		answer = q.Answers[0]
	}
	rec := AnswerRecord{
		QuestionID: q.ID,
		Prompt:     q.Text,
		RawInput:   v.RawInput,
		Correct:    v.IsCorrect,
		AcceptedAs: v.AcceptedAs,
		Rejection:  v.Rejection,
		Answer:     answer,
		Feedback:   v.Feedback,
		AnsweredAt: s.now(),
	}
	s.Records = append(s.Records, rec)
	if rec.Correct {
		s.Score++
	}

	s.cursor++
	if s.cursor == len(s.Questions) {
		s.finalize(rec.AnsweredAt)
	}
	return rec, nil
}

func (s *Session) finalize(at time.Time) {
	if s.Completed {
		return
	}
	s.Completed = true
	s.EndedAt = at
}

// Elapsed returns the time from start to completion, or to now while the
// session is still running.
func (s *Session) Elapsed() time.Duration {
	if s.Completed {
		return s.EndedAt.Sub(s.StartedAt)
	}
	return s.now().Sub(s.StartedAt)
}
