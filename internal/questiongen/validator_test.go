package questiongen

import (
	"testing"

	"github.com/abhisek/capitolquiz/internal/roster"
)

func validQuestion() *Question {
	return &Question{
		ID:           "q-1",
		Difficulty:   DifficultyEasy,
		Kind:         KindSeniorityMemberOfState,
		Presentation: PresentationText,
		Template:     tmplSeniorityMemberOfState,
		Fills:        map[string]string{"state": "Ohio", "seniority": "junior"},
		Text:         "Who is the junior senator from Ohio?",
		Answers:      []string{"Jon Husted"},
		Modes:        ModesFor(DifficultyEasy, SubjectPerson),
		Subject:      SubjectPerson,
		SubjectName:  "Jon Husted",
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
		Retryable: true,
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Validators) != 2 {
		t.Fatalf("expected 2 validators, got %d", len(cfg.Validators))
	}
	names := []string{"structural", "answer-set"}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PartyDraws != 30 {
		t.Errorf("expected PartyDraws 30, got %d", cfg.PartyDraws)
	}
	if cfg.SeniorityDraws != 40 {
		t.Errorf("expected SeniorityDraws 40, got %d", cfg.SeniorityDraws)
	}
	if cfg.PartySeniorityDraws != 50 {
		t.Errorf("expected PartySeniorityDraws 50, got %d", cfg.PartySeniorityDraws)
	}
}

func TestStructural_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validQuestion(), testRoster()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
	}{
		{"empty text", func(q *Question) { q.Text = "  " }},
		{"unfilled placeholder", func(q *Question) { q.Text = "Who is the {seniority} senator?" }},
		{"no answers", func(q *Question) { q.Answers = nil }},
		{"blank answer", func(q *Question) { q.Answers = []string{""} }},
		{"no modes", func(q *Question) { q.Modes = nil }},
		{"no full name mode", func(q *Question) { q.Modes = []AnswerMode{ModeFuzzy} }},
		{"unknown kind", func(q *Question) { q.Kind = "capital-of-state" }},
		{"bad presentation", func(q *Question) { q.Presentation = "hologram" }},
		{"portrait without ref", func(q *Question) { q.Presentation = PresentationPortrait }},
	}
	v := &StructuralValidator{}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := validQuestion()
			tc.mutate(q)
			err := v.Validate(q, testRoster())
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Validator != "structural" {
				t.Errorf("expected validator %q, got %q", "structural", err.Validator)
			}
		})
	}
}

func TestStructural_UnknownKindNotRetryable(t *testing.T) {
	q := validQuestion()
	q.Kind = "capital-of-state"
	err := (&StructuralValidator{}).Validate(q, testRoster())
	if err == nil || err.Retryable {
		t.Fatalf("expected non-retryable error, got %v", err)
	}
}

func TestAnswerSet_Valid(t *testing.T) {
	v := &AnswerSetValidator{}
	if err := v.Validate(validQuestion(), testRoster()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestAnswerSet_WrongAnswer(t *testing.T) {
	q := validQuestion()
	q.Answers = []string{"Bernie Moreno"}
	if err := (&AnswerSetValidator{}).Validate(q, testRoster()); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestAnswerSet_UniquenessRequired(t *testing.T) {
	r := roster.New([]roster.Entity{
		{Name: "Amy Alpha", State: "Ohio", Party: roster.PartyDemocrat, Seniority: roster.SeniorityJunior},
		{Name: "Bob Beta", State: "Ohio", Party: roster.PartyDemocrat, Seniority: roster.SeniorityJunior},
	})
	q := validQuestion()
	q.Answers = []string{"Amy Alpha", "Bob Beta"}
	err := (&AnswerSetValidator{}).Validate(q, r)
	if err == nil {
		t.Fatal("expected uniqueness error")
	}
}

func TestAnswerSet_MemberOfStateAllowsMany(t *testing.T) {
	q := validQuestion()
	q.Kind = KindMemberOfState
	q.Fills = map[string]string{"state": "Vermont"}
	q.Answers = []string{"Bernie Sanders", "Peter Welch"}
	if err := (&AnswerSetValidator{}).Validate(q, testRoster()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestAnswerSet_EntityAttribute(t *testing.T) {
	q := validQuestion()
	q.Kind = KindPartyOfEntity
	q.Subject = SubjectParty
	q.SubjectName = "Bernie Sanders"
	q.Fills = map[string]string{"name": "Bernie Sanders"}
	q.Answers = []string{"Independent"}
	if err := (&AnswerSetValidator{}).Validate(q, testRoster()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	q.Answers = []string{"Democrat"}
	if err := (&AnswerSetValidator{}).Validate(q, testRoster()); err == nil {
		t.Fatal("expected mismatch error")
	}
}
