package questiongen

import (
	"math/rand/v2"

	"github.com/abhisek/capitolquiz/internal/roster"
)

// Prompt templates. Placeholders are filled with display values.
const (
	tmplMemberOfState          = "Name a senator from {state}."
	tmplPartyMemberOfState     = "Name a {party} senator from {state}."
	tmplSeniorityMemberOfState = "Who is the {seniority} senator from {state}?"
	tmplPartySeniority         = "Who is the {seniority} {party} senator from {state}?"
	tmplPartyOfNamed           = "Which party does {name} belong to?"
	tmplStateOfNamed           = "Which state does {name} represent?"
	tmplPartyOfShown           = "Which party does this senator belong to?"
	tmplStateOfShown           = "Which state does this senator represent?"
	tmplPortraitIdentify       = "Who is this senator?"
)

// filled is a template instantiated against a roster, before modes and
// identity are attached.
type filled struct {
	template     string
	fills        map[string]string
	answers      []string
	subject      AnswerSubject
	subjectName  string
	presentation Presentation
	portraitRef  string
}

// fill instantiates kind from r. The switch covers every TemplateKind.
func (g *Generator) fill(kind TemplateKind, r *roster.Roster) (*filled, *GenerationError) {
	if r.Len() == 0 {
		return nil, failure(FailureUnsolvableTemplate, kind, "roster is empty")
	}

	switch kind {
	case KindMemberOfState:
		return g.fillMemberOfState(r)
	case KindPartyMemberOfState:
		return g.fillPartyMemberOfState(r)
	case KindSeniorityMemberOfState:
		return g.fillSeniorityMemberOfState(r)
	case KindPartySeniorityMemberOfState:
		return g.fillPartySeniorityMemberOfState(r)
	case KindPartyOfEntity:
		return g.fillEntityHybrid(kind, SubjectParty, r)
	case KindStateOfEntity:
		return g.fillEntityHybrid(kind, SubjectState, r)
	case KindPortraitIdentify:
		return g.fillPortraitIdentify(r)
	case KindPartyOfEntityRandom:
		return g.fillEntityRandom(SubjectParty, r)
	case KindStateOfEntityRandom:
		return g.fillEntityRandom(SubjectState, r)
	default:
		return nil, failure(FailureUnknownTemplate, kind, "template kind is not registered")
	}
}

func (g *Generator) fillMemberOfState(r *roster.Roster) (*filled, *GenerationError) {
	// Every state in States() has at least one member.
	state := pick(g.rng, r.States())
	return &filled{
		template:     tmplMemberOfState,
		fills:        map[string]string{"state": state},
		answers:      roster.Names(r.InState(state)),
		subject:      SubjectPerson,
		presentation: PresentationText,
	}, nil
}

func (g *Generator) fillPartyMemberOfState(r *roster.Roster) (*filled, *GenerationError) {
	for range g.config.PartyDraws {
		state := pick(g.rng, r.States())
		party := pick(g.rng, roster.Parties)
		matches := r.Matching(roster.Filter{State: state, Party: party})
		if len(matches) == 0 {
			continue
		}
		return &filled{
			template:     tmplPartyMemberOfState,
			fills:        map[string]string{"state": state, "party": party.Adjective()},
			answers:      roster.Names(matches),
			subject:      SubjectPerson,
			presentation: PresentationText,
		}, nil
	}
	return nil, failure(FailureUnsolvableTemplate, KindPartyMemberOfState,
		"no (state, party) pair matched in %d draws", g.config.PartyDraws)
}

func (g *Generator) fillSeniorityMemberOfState(r *roster.Roster) (*filled, *GenerationError) {
	for range g.config.SeniorityDraws {
		state := pick(g.rng, r.States())
		sen := pick(g.rng, roster.Seniorities)
		matches := r.Matching(roster.Filter{State: state, Seniority: sen})
		if len(matches) != 1 {
			continue
		}
		return &filled{
			template:     tmplSeniorityMemberOfState,
			fills:        map[string]string{"state": state, "seniority": sen.Lower()},
			answers:      roster.Names(matches),
			subject:      SubjectPerson,
			subjectName:  matches[0].Name,
			presentation: PresentationText,
		}, nil
	}
	return nil, failure(FailureAmbiguousAnswer, KindSeniorityMemberOfState,
		"no (state, seniority) pair matched exactly one senator in %d draws", g.config.SeniorityDraws)
}

func (g *Generator) fillPartySeniorityMemberOfState(r *roster.Roster) (*filled, *GenerationError) {
	for range g.config.PartySeniorityDraws {
		state := pick(g.rng, r.States())
		party := pick(g.rng, roster.Parties)
		sen := pick(g.rng, roster.Seniorities)
		matches := r.Matching(roster.Filter{State: state, Party: party, Seniority: sen})
		if len(matches) != 1 {
			continue
		}
		return &filled{
			template: tmplPartySeniority,
			fills: map[string]string{
				"state":     state,
				"party":     party.Adjective(),
				"seniority": sen.Lower(),
			},
			answers:      roster.Names(matches),
			subject:      SubjectPerson,
			subjectName:  matches[0].Name,
			presentation: PresentationText,
		}, nil
	}
	return nil, failure(FailureAmbiguousAnswer, KindPartySeniorityMemberOfState,
		"no (state, party, seniority) triple matched exactly one senator in %d draws", g.config.PartySeniorityDraws)
}

// fillEntityHybrid asks about a portrait-bearing entity shown by name and
// portrait together.
func (g *Generator) fillEntityHybrid(kind TemplateKind, subject AnswerSubject, r *roster.Roster) (*filled, *GenerationError) {
	candidates := r.WithPortrait()
	if len(candidates) == 0 {
		return nil, failure(FailureDataMissing, kind, "no senator has a portrait")
	}
	e := pick(g.rng, candidates)

	tmpl := tmplStateOfNamed
	if subject == SubjectParty {
		tmpl = tmplPartyOfNamed
	}
	return &filled{
		template:     tmpl,
		fills:        map[string]string{"name": e.Name},
		answers:      []string{entityAttribute(e, subject)},
		subject:      subject,
		subjectName:  e.Name,
		presentation: PresentationHybrid,
		portraitRef:  e.PortraitRef,
	}, nil
}

func (g *Generator) fillPortraitIdentify(r *roster.Roster) (*filled, *GenerationError) {
	candidates := r.WithPortrait()
	if len(candidates) == 0 {
		return nil, failure(FailureDataMissing, KindPortraitIdentify, "no senator has a portrait")
	}
	e := pick(g.rng, candidates)
	return &filled{
		template:     tmplPortraitIdentify,
		fills:        map[string]string{},
		answers:      []string{e.Name},
		subject:      SubjectPerson,
		subjectName:  e.Name,
		presentation: PresentationPortrait,
		portraitRef:  e.PortraitRef,
	}, nil
}

// fillEntityRandom picks any entity and flips a coin between naming it and
// showing its portrait. Entities without a portrait are always named.
func (g *Generator) fillEntityRandom(subject AnswerSubject, r *roster.Roster) (*filled, *GenerationError) {
	e := r.At(g.rng.IntN(r.Len()))
	showPortrait := g.rng.IntN(2) == 0 && e.HasPortrait()

	f := &filled{
		answers:     []string{entityAttribute(e, subject)},
		subject:     subject,
		subjectName: e.Name,
	}
	if showPortrait {
		f.template = tmplStateOfShown
		if subject == SubjectParty {
			f.template = tmplPartyOfShown
		}
		f.fills = map[string]string{}
		f.presentation = PresentationPortrait
		f.portraitRef = e.PortraitRef
		return f, nil
	}

	f.template = tmplStateOfNamed
	if subject == SubjectParty {
		f.template = tmplPartyOfNamed
	}
	f.fills = map[string]string{"name": e.Name}
	f.presentation = PresentationText
	return f, nil
}

func entityAttribute(e roster.Entity, subject AnswerSubject) string {
	if subject == SubjectParty {
		return string(e.Party)
	}
	return e.State
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
