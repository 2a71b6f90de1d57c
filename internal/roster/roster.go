package roster

import "errors"

// ErrEmptyRoster is returned when a roster source yields no entities.
var ErrEmptyRoster = errors.New("roster is empty")

// Roster is an ordered, read-only collection of entities.
type Roster struct {
	entities []Entity
	states   []string
}

// New creates a Roster from entities, preserving their order.
func New(entities []Entity) *Roster {
	own := make([]Entity, len(entities))
	copy(own, entities)

	seen := make(map[string]bool)
	var states []string
	for _, e := range own {
		if !seen[e.State] {
			seen[e.State] = true
			states = append(states, e.State)
		}
	}
	return &Roster{entities: own, states: states}
}

// Len returns the number of entities.
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entities)
}

// All returns a copy of the entities in roster order.
func (r *Roster) All() []Entity {
	if r == nil {
		return nil
	}
	out := make([]Entity, len(r.entities))
	copy(out, r.entities)
	return out
}

// At returns the i-th entity.
func (r *Roster) At(i int) Entity {
	return r.entities[i]
}

// States returns the distinct states present, in first-appearance order.
func (r *Roster) States() []string {
	if r == nil {
		return nil
	}
	return r.states
}

// Filter narrows a roster query. Zero-valued fields match anything.
type Filter struct {
	State     string
	Party     Party
	Seniority Seniority
}

// Matches reports whether e satisfies every non-zero field of f.
func (f Filter) Matches(e Entity) bool {
	if f.State != "" && e.State != f.State {
		return false
	}
	if f.Party != "" && e.Party != f.Party {
		return false
	}
	if f.Seniority != "" && e.Seniority != f.Seniority {
		return false
	}
	return true
}

// Matching returns the entities satisfying f, in roster order.
func (r *Roster) Matching(f Filter) []Entity {
	if r == nil {
		return nil
	}
	var out []Entity
	for _, e := range r.entities {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// InState returns the entities representing state.
func (r *Roster) InState(state string) []Entity {
	return r.Matching(Filter{State: state})
}

// WithPortrait returns the entities that have a portrait asset.
func (r *Roster) WithPortrait() []Entity {
	if r == nil {
		return nil
	}
	var out []Entity
	for _, e := range r.entities {
		if e.HasPortrait() {
			out = append(out, e)
		}
	}
	return out
}

// Names returns the names of entities, in order.
func Names(entities []Entity) []string {
	names := make([]string, len(entities))
	for i, e := range entities {
		names[i] = e.Name
	}
	return names
}
