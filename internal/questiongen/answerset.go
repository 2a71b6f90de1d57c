package questiongen

import (
	"fmt"
	"slices"

	"github.com/abhisek/capitolquiz/internal/roster"
)

// AnswerSetValidator re-derives the expected answers from the roster and
// checks them against the question. Uniqueness kinds must resolve to
// exactly one entity.
type AnswerSetValidator struct{}

func (v *AnswerSetValidator) Name() string { return "answer-set" }

func (v *AnswerSetValidator) Validate(q *Question, r *roster.Roster) *ValidationError {
	want, err := expectedAnswers(q, r)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error(), Retryable: true}
	}
	if !slices.Equal(want, q.Answers) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answers %q do not match roster %q", q.Answers, want),
			Retryable: true,
		}
	}
	if requiresUnique(q.Kind) && len(q.Answers) != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected exactly one answer, got %d", len(q.Answers)),
			Retryable: true,
		}
	}
	return nil
}

// requiresUnique reports whether kind must resolve to a single entity.
func requiresUnique(kind TemplateKind) bool {
	switch kind {
	case KindSeniorityMemberOfState, KindPartySeniorityMemberOfState, KindPortraitIdentify:
		return true
	default:
		return false
	}
}

func expectedAnswers(q *Question, r *roster.Roster) ([]string, error) {
	switch q.Kind {
	case KindMemberOfState, KindPartyMemberOfState, KindSeniorityMemberOfState, KindPartySeniorityMemberOfState:
		f := roster.Filter{State: q.Fills["state"]}
		if f.State == "" {
			return nil, fmt.Errorf("missing state fill")
		}
		if p, ok := q.Fills["party"]; ok {
			f.Party = roster.ParseParty(p)
		}
		if s, ok := q.Fills["seniority"]; ok {
			f.Seniority = roster.ParseSeniority(s)
		}
		return roster.Names(r.Matching(f)), nil

	case KindPortraitIdentify:
		var names []string
		for _, e := range r.WithPortrait() {
			if e.PortraitRef == q.PortraitRef {
				names = append(names, e.Name)
			}
		}
		return names, nil

	case KindPartyOfEntity, KindPartyOfEntityRandom, KindStateOfEntity, KindStateOfEntityRandom:
		var out []string
		for _, e := range r.All() {
			if e.Name != q.SubjectName {
				continue
			}
			if q.Subject == SubjectParty {
				out = append(out, string(e.Party))
			} else {
				out = append(out, e.State)
			}
		}
		if len(out) != 1 {
			return nil, fmt.Errorf("subject %q matches %d entities", q.SubjectName, len(out))
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown template kind %q", q.Kind)
	}
}
