package session

import (
	"errors"
	"testing"

	"github.com/abhisek/capitolquiz/internal/questiongen"
	"github.com/abhisek/capitolquiz/internal/roster"
)

type countingGenerator struct {
	calls int
	gen   func(n int) (*questiongen.Question, error)
}

func (g *countingGenerator) Generate(questiongen.Difficulty, *roster.Roster) (*questiongen.Question, error) {
	g.calls++
	return g.gen(g.calls)
}

func TestBuildPool_DistinctPrompts(t *testing.T) {
	r, err := roster.Default(nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range []questiongen.Difficulty{questiongen.DifficultyEasy, questiongen.DifficultyHard} {
		gen := questiongen.NewSeeded(17, questiongen.DefaultConfig(), nil)
		pool, err := BuildPool(gen, d, r, 20, DefaultAttemptsPerQuestion)
		if err != nil {
			t.Fatalf("%s: BuildPool: %v", d, err)
		}
		if len(pool) != 20 {
			t.Fatalf("%s: got %d questions, want 20", d, len(pool))
		}
		seen := make(map[string]bool)
		for _, q := range pool {
			key := promptKey(q)
			if seen[key] {
				t.Errorf("%s: duplicate prompt %q", d, key)
			}
			seen[key] = true
		}
	}
}

func TestBuildPool_Insufficient(t *testing.T) {
	r := roster.New([]roster.Entity{
		{Name: "Bernie Sanders", State: "Vermont", Party: roster.PartyIndependent, Seniority: roster.SenioritySenior},
	})
	gen := questiongen.NewSeeded(1, questiongen.DefaultConfig(), nil)
	_, err := BuildPool(gen, questiongen.DifficultyEasy, r, 50, 3)
	if !errors.Is(err, ErrInsufficientQuestions) {
		t.Fatalf("expected ErrInsufficientQuestions, got %v", err)
	}
}

func TestBuildPool_AttemptCeiling(t *testing.T) {
	g := &countingGenerator{gen: func(int) (*questiongen.Question, error) {
		return &questiongen.Question{ID: "same", Text: "Same?"}, nil
	}}
	_, err := BuildPool(g, questiongen.DifficultyEasy, nil, 4, 5)
	if !errors.Is(err, ErrInsufficientQuestions) {
		t.Fatalf("expected ErrInsufficientQuestions, got %v", err)
	}
	if g.calls != 20 {
		t.Errorf("expected 20 generation calls, got %d", g.calls)
	}
}

func TestBuildPool_UnknownTemplateAborts(t *testing.T) {
	g := &countingGenerator{gen: func(int) (*questiongen.Question, error) {
		return nil, &questiongen.GenerationError{Kind: questiongen.FailureUnknownTemplate, Message: "nope"}
	}}
	_, err := BuildPool(g, questiongen.DifficultyEasy, nil, 4, 5)
	var ge *questiongen.GenerationError
	if !errors.As(err, &ge) || ge.Kind != questiongen.FailureUnknownTemplate {
		t.Fatalf("expected unknown_template, got %v", err)
	}
	if g.calls != 1 {
		t.Errorf("expected 1 call, got %d", g.calls)
	}
}

func TestBuildPool_RetriesFailures(t *testing.T) {
	g := &countingGenerator{gen: func(n int) (*questiongen.Question, error) {
		if n%2 == 1 {
			return nil, &questiongen.GenerationError{Kind: questiongen.FailureUnsolvableTemplate, Message: "unlucky"}
		}
		return &questiongen.Question{ID: "q", Text: string(rune('a' + n))}, nil
	}}
	pool, err := BuildPool(g, questiongen.DifficultyEasy, nil, 3, 0)
	if err != nil {
		t.Fatalf("BuildPool: %v", err)
	}
	if len(pool) != 3 || g.calls != 6 {
		t.Errorf("got %d questions in %d calls, want 3 in 6", len(pool), g.calls)
	}
}

func TestBuildPool_InvalidSize(t *testing.T) {
	if _, err := BuildPool(&countingGenerator{}, questiongen.DifficultyEasy, nil, 0, 1); err == nil {
		t.Error("expected error for empty pool")
	}
}
