package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/capitolquiz/internal/textmatch"
)

// Channel is the acceptance rule that matched a correct answer.
type Channel string

const (
	ChannelFullName    Channel = "full_name"
	ChannelLastName    Channel = "last_name"
	ChannelMisspelling Channel = "misspelling_correction"
)

// Rejection is why an answer was not accepted.
type Rejection string

const (
	RejectEmptyInput       Rejection = "empty_input"
	RejectAmbiguousLast    Rejection = "ambiguous_last_name"
	RejectNoMatch          Rejection = "no_match"
	RejectFullNameRequired Rejection = "full_name_required"
)

// Verdict is the outcome of grading one answer.
type Verdict struct {
	QuestionID string
	RawInput   string
	IsCorrect  bool

	// AcceptedAs is set on correct answers, Rejection on incorrect ones.
	AcceptedAs Channel
	Rejection  Rejection

	// MatchedAnswer is the canonical answer the input was matched to.
	MatchedAnswer string

	Feedback string
}

// CheckAnswer grades raw against q. It never fails: every input gets a
// definite verdict.
//
// With only full_name permitted, the normalized input must equal one of the
// normalized answers. Otherwise the rules are tried in order, first match
// wins:
//  1. exact normalized match
//  2. last name shared with exactly one answer (more than one is rejected
//     as ambiguous, without trying fuzzy rules)
//  3. full answer within edit-distance tolerance
//  4. last name within edit-distance tolerance
func CheckAnswer(q *Question, raw string) Verdict {
	v := Verdict{QuestionID: q.ID, RawInput: raw}

	input := textmatch.Normalize(raw)
	if input == "" {
		return v.reject(RejectEmptyInput, "Type an answer first.")
	}

	for _, a := range q.Answers {
		if textmatch.Normalize(a) == input {
			return v.accept(ChannelFullName, a, "Correct!")
		}
	}

	lastMode := q.Allows(ModeLastName)
	fuzzyMode := q.Allows(ModeFuzzy)
	if !lastMode && !fuzzyMode {
		return v.reject(RejectFullNameRequired,
			fmt.Sprintf("Incorrect. Only the full answer counts here: %s.", answerList(q.Answers)))
	}

	inputLast := textmatch.LastName(input)

	if lastMode && inputLast != "" {
		var matched []string
		for _, a := range q.Answers {
			if textmatch.LastName(a) == inputLast {
				matched = append(matched, a)
			}
		}
		switch {
		case len(matched) == 1:
			return v.accept(ChannelLastName, matched[0],
				fmt.Sprintf("Correct! %s.", matched[0]))
		case len(matched) > 1:
			return v.reject(RejectAmbiguousLast,
				fmt.Sprintf("%q could mean %s. Type the full name.", inputLast, answerList(matched)))
		}
	}

	if fuzzyMode {
		if a, ok := closest(input, q.Answers, textmatch.Normalize); ok {
			return v.accept(ChannelMisspelling, a,
				fmt.Sprintf("Correct! It's spelled %s.", a))
		}
	}

	if fuzzyMode && lastMode && inputLast != "" {
		if a, ok := closest(inputLast, q.Answers, textmatch.LastName); ok {
			return v.accept(ChannelMisspelling, a,
				fmt.Sprintf("Correct! It's spelled %s.", a))
		}
	}

	hint := "Small misspellings are accepted on Easy."
	if lastMode {
		hint = "Last names and small misspellings are accepted on Easy."
	}
	return v.reject(RejectNoMatch,
		fmt.Sprintf("Not quite. The answer was %s. %s", answerList(q.Answers), hint))
}

// closest returns the answer whose key is nearest to input within tolerance.
// Ties go to the earlier answer.
func closest(input string, answers []string, key func(string) string) (string, bool) {
	best, bestDist := "", -1
	for _, a := range answers {
		d, ok := textmatch.WithinTolerance(input, key(a))
		if !ok {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = a, d
		}
	}
	return best, bestDist >= 0
}

func answerList(answers []string) string {
	switch len(answers) {
	case 0:
		return ""
	case 1:
		return answers[0]
	case 2:
		return answers[0] + " or " + answers[1]
	default:
		return strings.Join(answers[:len(answers)-1], ", ") + " or " + answers[len(answers)-1]
	}
}

func (v Verdict) accept(ch Channel, matched, feedback string) Verdict {
	v.IsCorrect = true
	v.AcceptedAs = ch
	v.MatchedAnswer = matched
	v.Feedback = feedback
	return v
}

func (v Verdict) reject(reason Rejection, feedback string) Verdict {
	v.Rejection = reason
	v.Feedback = feedback
	return v
}
