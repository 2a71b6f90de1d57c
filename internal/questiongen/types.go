package questiongen

import (
	"fmt"
	"slices"
	"strings"
)

// Difficulty selects the eligible templates and how lenient grading is.
type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// ParseDifficulty parses "easy" or "hard" (case-insensitive).
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy or hard)", s)
	}
}

// DisplayName returns the difficulty for display ("Easy", "Hard").
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// TemplateKind identifies a parametrized question shape.
type TemplateKind string

const (
	KindMemberOfState               TemplateKind = "member-of-state"
	KindPartyMemberOfState          TemplateKind = "party-member-of-state"
	KindSeniorityMemberOfState      TemplateKind = "seniority-member-of-state"
	KindPartyOfEntity               TemplateKind = "party-of-entity"
	KindStateOfEntity               TemplateKind = "state-of-entity"
	KindPortraitIdentify            TemplateKind = "portrait-identify"
	KindPartySeniorityMemberOfState TemplateKind = "party-seniority-member-of-state"
	KindPartyOfEntityRandom         TemplateKind = "party-of-entity-random"
	KindStateOfEntityRandom         TemplateKind = "state-of-entity-random"
)

// AllKinds lists every registered template kind.
var AllKinds = []TemplateKind{
	KindMemberOfState,
	KindPartyMemberOfState,
	KindSeniorityMemberOfState,
	KindPartyOfEntity,
	KindStateOfEntity,
	KindPortraitIdentify,
	KindPartySeniorityMemberOfState,
	KindPartyOfEntityRandom,
	KindStateOfEntityRandom,
}

// Known reports whether k is a registered template kind.
func (k TemplateKind) Known() bool {
	return slices.Contains(AllKinds, k)
}

// TierKinds returns the template kinds eligible at difficulty d, in their
// unshuffled order. Unknown difficulties have none.
func TierKinds(d Difficulty) []TemplateKind {
	switch d {
	case DifficultyEasy:
		return []TemplateKind{
			KindMemberOfState,
			KindPartyMemberOfState,
			KindSeniorityMemberOfState,
			KindPartyOfEntity,
			KindStateOfEntity,
		}
	case DifficultyHard:
		return []TemplateKind{
			KindPortraitIdentify,
			KindSeniorityMemberOfState,
			KindPartySeniorityMemberOfState,
			KindPartyOfEntityRandom,
			KindStateOfEntityRandom,
		}
	default:
		return nil
	}
}

// Presentation describes how the subject of a question is shown.
type Presentation string

const (
	PresentationText     Presentation = "text"     // prompt text only
	PresentationPortrait Presentation = "portrait" // portrait instead of a name
	PresentationHybrid   Presentation = "hybrid"   // name and portrait
)

// ShowsPortrait reports whether the presentation includes a portrait.
func (p Presentation) ShowsPortrait() bool {
	return p == PresentationPortrait || p == PresentationHybrid
}

// AnswerSubject is what the player is asked to supply.
type AnswerSubject string

const (
	SubjectPerson AnswerSubject = "person"
	SubjectParty  AnswerSubject = "party"
	SubjectState  AnswerSubject = "state"
)

// AnswerMode is a rule under which a typed answer may be accepted.
type AnswerMode string

const (
	ModeFullName AnswerMode = "full_name"
	ModeLastName AnswerMode = "last_name"
	ModeFuzzy    AnswerMode = "fuzzy"
)

// ModesFor returns the answer modes permitted for a subject at difficulty d.
// Hard accepts only the exact full answer. Easy adds misspelling tolerance,
// plus last-name matching when the answer is a person.
func ModesFor(d Difficulty, subject AnswerSubject) []AnswerMode {
	if d != DifficultyEasy {
		return []AnswerMode{ModeFullName}
	}
	if subject == SubjectPerson {
		return []AnswerMode{ModeFullName, ModeLastName, ModeFuzzy}
	}
	return []AnswerMode{ModeFullName, ModeFuzzy}
}

// Question is a generated trivia question ready for display.
// It is never mutated after generation.
type Question struct {
	// ID uniquely identifies the question.
	ID string

	Difficulty Difficulty
	Kind       TemplateKind

	// Presentation tells the UI whether to show the name, the portrait, or both.
	Presentation Presentation

	// Template is the prompt with {placeholder}s, Fills the values used.
	Template string
	Fills    map[string]string

	// Text is the rendered prompt, e.g. "Who is the junior senator from Ohio?"
	Text string

	// Answers lists every acceptable canonical answer, in roster order.
	// More than one entry means any of them is correct.
	Answers []string

	// Modes is the set of answer-acceptance rules the grader may apply.
	Modes []AnswerMode

	// Subject is what the answer names.
	Subject AnswerSubject

	// SubjectName is the entity the question is about, for kinds that
	// describe a single entity. Empty otherwise.
	SubjectName string

	// PortraitRef is set when the presentation shows a portrait.
	PortraitRef string
}

// Allows reports whether answer mode m is permitted for q.
func (q *Question) Allows(m AnswerMode) bool {
	return slices.Contains(q.Modes, m)
}

// renderTemplate substitutes {key} placeholders in tmpl with fills.
func renderTemplate(tmpl string, fills map[string]string) string {
	pairs := make([]string, 0, len(fills)*2)
	for k, v := range fills {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
