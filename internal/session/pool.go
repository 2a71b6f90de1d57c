package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/capitolquiz/internal/questiongen"
	"github.com/abhisek/capitolquiz/internal/roster"
)

// DefaultAttemptsPerQuestion bounds BuildPool's generation calls per
// requested question.
const DefaultAttemptsPerQuestion = 10

// ErrInsufficientQuestions is returned when BuildPool cannot assemble enough
// distinct questions within its attempt ceiling.
var ErrInsufficientQuestions = errors.New("not enough distinct questions")

// Generator produces single questions. *questiongen.Generator satisfies it.
type Generator interface {
	Generate(d questiongen.Difficulty, r *roster.Roster) (*questiongen.Question, error)
}

// BuildPool generates n questions with distinct prompts. It makes at most
// n*attemptsPerQuestion generation calls; failures and duplicates use up
// attempts. An unknown_template failure aborts immediately.
func BuildPool(gen Generator, d questiongen.Difficulty, r *roster.Roster, n, attemptsPerQuestion int) ([]*questiongen.Question, error) {
	if n <= 0 {
		return nil, fmt.Errorf("pool size must be positive, got %d", n)
	}
	if attemptsPerQuestion <= 0 {
		attemptsPerQuestion = DefaultAttemptsPerQuestion
	}

	pool := make([]*questiongen.Question, 0, n)
	seen := make(map[string]bool, n)
	var lastErr error

	for attempt := 0; attempt < n*attemptsPerQuestion && len(pool) < n; attempt++ {
		q, err := gen.Generate(d, r)
		if err != nil {
			var ge *questiongen.GenerationError
			if errors.As(err, &ge) && !ge.Retryable() {
				return nil, err
			}
			lastErr = err
			continue
		}
		key := promptKey(q)
		if seen[key] {
			continue
		}
		seen[key] = true
		pool = append(pool, q)
	}

	if len(pool) < n {
		if lastErr != nil {
			return nil, fmt.Errorf("%w: built %d of %d (last failure: %v)", ErrInsufficientQuestions, len(pool), n, lastErr)
		}
		return nil, fmt.Errorf("%w: built %d of %d", ErrInsufficientQuestions, len(pool), n)
	}
	return pool, nil
}

// promptKey identifies what the player sees. Portrait prompts share their
// text, so the portrait tells them apart.
func promptKey(q *questiongen.Question) string {
	if q.Presentation.ShowsPortrait() {
		return q.Text + "|" + q.PortraitRef
	}
	return q.Text
}
