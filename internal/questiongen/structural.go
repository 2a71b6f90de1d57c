package questiongen

import (
	"strings"

	"github.com/abhisek/capitolquiz/internal/roster"
)

// StructuralValidator checks that required fields are present and have
// valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ *roster.Roster) *ValidationError {
	if strings.TrimSpace(q.Text) == "" {
		return v.fail("question text is empty")
	}
	if strings.ContainsAny(q.Text, "{}") {
		return v.fail("question text has an unfilled placeholder")
	}
	if len(q.Answers) == 0 {
		return v.fail("question has no answers")
	}
	for _, a := range q.Answers {
		if strings.TrimSpace(a) == "" {
			return v.fail("question has an empty answer")
		}
	}
	if len(q.Modes) == 0 {
		return v.fail("question permits no answer modes")
	}
	if !q.Allows(ModeFullName) {
		return v.fail("full_name mode must always be permitted")
	}
	if !q.Kind.Known() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "unknown template kind " + string(q.Kind),
			Retryable: false,
		}
	}
	switch q.Presentation {
	case PresentationText, PresentationPortrait, PresentationHybrid:
	default:
		return v.fail("presentation must be \"text\", \"portrait\", or \"hybrid\"")
	}
	if q.Presentation.ShowsPortrait() && q.PortraitRef == "" {
		return v.fail("portrait presentation without a portrait reference")
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
