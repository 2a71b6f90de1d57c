// Package questiongen builds senator trivia questions from a roster and
// grades typed answers against them.
package questiongen

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/capitolquiz/internal/roster"
)

// Generator fills question templates from a roster. All randomness comes
// from the supplied rng, so a fixed seed replays the same questions.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng    *rand.Rand
	config Config
	log    *zap.Logger
}

// New creates a Generator. A nil log discards diagnostics.
func New(rng *rand.Rand, cfg Config, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{rng: rng, config: cfg, log: log}
}

// NewSeeded creates a Generator with a PCG source derived from seed.
func NewSeeded(seed uint64, cfg Config, log *zap.Logger) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), cfg, log)
}

// Generate produces one question for difficulty d. The tier's template
// kinds are tried in a random order and the first that fills and validates
// wins. When every kind fails the error is a *GenerationError of kind
// FailureUnsolvableTemplate listing each kind's failure.
func (g *Generator) Generate(d Difficulty, r *roster.Roster) (*Question, error) {
	kinds := slices.Clone(TierKinds(d))
	if len(kinds) == 0 {
		return nil, failure(FailureUnknownTemplate, "", "no templates for difficulty %q", d)
	}
	g.rng.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})

	var details []string
	for _, kind := range kinds {
		q, err := g.GenerateKind(kind, d, r)
		if err == nil {
			return q, nil
		}
		var ge *GenerationError
		if errors.As(err, &ge) && ge.Kind == FailureUnknownTemplate {
			return nil, err
		}
		details = append(details, fmt.Sprintf("%s: %v", kind, err))
	}

	g.log.Debug("all templates failed",
		zap.String("difficulty", string(d)),
		zap.Strings("details", details))
	return nil, &GenerationError{
		Kind:    FailureUnsolvableTemplate,
		Message: fmt.Sprintf("no %s template could be filled from %d senators", d, r.Len()),
		Details: details,
	}
}

// GenerateKind fills a specific template kind, regardless of tier.
func (g *Generator) GenerateKind(kind TemplateKind, d Difficulty, r *roster.Roster) (*Question, error) {
	if !kind.Known() {
		return nil, failure(FailureUnknownTemplate, kind, "template kind is not registered")
	}

	f, ferr := g.fill(kind, r)
	if ferr != nil {
		g.log.Debug("template failed",
			zap.String("kind", string(kind)),
			zap.String("failure", string(ferr.Kind)),
			zap.String("message", ferr.Message))
		return nil, ferr
	}

	q := &Question{
		ID:           uuid.NewString(),
		Difficulty:   d,
		Kind:         kind,
		Presentation: f.presentation,
		Template:     f.template,
		Fills:        maps.Clone(f.fills),
		Text:         renderTemplate(f.template, f.fills),
		Answers:      f.answers,
		Modes:        ModesFor(d, f.subject),
		Subject:      f.subject,
		SubjectName:  f.subjectName,
		PortraitRef:  f.portraitRef,
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(q, r); verr != nil {
			g.log.Debug("question rejected",
				zap.String("kind", string(kind)),
				zap.String("validator", verr.Validator),
				zap.String("message", verr.Message))
			return nil, failure(FailureUnsolvableTemplate, kind, "%s", verr.Error())
		}
	}

	g.log.Debug("question generated",
		zap.String("kind", string(kind)),
		zap.String("text", q.Text),
		zap.Int("answers", len(q.Answers)))
	return q, nil
}
