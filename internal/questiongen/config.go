package questiongen

// Config controls the behavior of the Generator.
type Config struct {
	// Validators is the ordered list of validators run on every filled
	// question. The first failure stops the pipeline.
	Validators []Validator

	// PartyDraws bounds the random (state, party) draws for
	// party-member-of-state.
	PartyDraws int

	// SeniorityDraws bounds the random (state, seniority) draws for
	// seniority-member-of-state.
	SeniorityDraws int

	// PartySeniorityDraws bounds the random (state, party, seniority) draws
	// for party-seniority-member-of-state.
	PartySeniorityDraws int
}

// DefaultConfig returns a Config with the standard validator chain and
// draw budgets.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerSetValidator{},
		},
		PartyDraws:          30,
		SeniorityDraws:      40,
		PartySeniorityDraws: 50,
	}
}
