package questiongen

import (
	"fmt"

	"github.com/abhisek/capitolquiz/internal/roster"
)

// Validator checks a filled question before it is handed out.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "answer-set".
	Name() string

	// Validate returns nil if q passes, or a ValidationError describing the
	// problem. The roster q was generated from is supplied for cross-checks.
	Validate(q *Question, r *roster.Roster) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
