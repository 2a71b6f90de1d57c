package questiongen

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind classifies why a question could not be generated.
type FailureKind string

const (
	// FailureUnknownTemplate means an unregistered template kind was requested.
	FailureUnknownTemplate FailureKind = "unknown_template"

	// FailureUnsolvableTemplate means the roster cannot satisfy the
	// template's constraints.
	FailureUnsolvableTemplate FailureKind = "unsolvable_template"

	// FailureDataMissing means a required attribute, such as a portrait,
	// is absent from every candidate entity.
	FailureDataMissing FailureKind = "data_missing"

	// FailureAmbiguousAnswer means a uniqueness-required template used up
	// its draws without finding exactly one match.
	FailureAmbiguousAnswer FailureKind = "ambiguous_answer"
)

// GenerationError describes a failed generation attempt. It is an expected
// outcome on small or sparse rosters, not a programming error.
type GenerationError struct {
	Kind     FailureKind
	Template TemplateKind // empty when no single template is at fault
	Message  string
	Details  []string
}

func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Template != "" {
		fmt.Fprintf(&b, " (%s)", e.Template)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Details) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Details, "; "))
	}
	return b.String()
}

// Retryable reports whether trying again with fresh randomness may succeed.
func (e *GenerationError) Retryable() bool {
	return e.Kind != FailureUnknownTemplate
}

// IsRetryable reports whether err is a GenerationError that may succeed on
// another attempt.
func IsRetryable(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge) && ge.Retryable()
}

func failure(kind FailureKind, tmpl TemplateKind, format string, args ...any) *GenerationError {
	return &GenerationError{
		Kind:     kind,
		Template: tmpl,
		Message:  fmt.Sprintf(format, args...),
	}
}
