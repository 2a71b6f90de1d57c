// Package roster holds the politicians a quiz is generated from.
package roster

import "strings"

// Party is a politician's party affiliation.
type Party string

const (
	PartyDemocrat    Party = "Democrat"
	PartyRepublican  Party = "Republican"
	PartyIndependent Party = "Independent"
)

// Parties lists every party in a stable order.
var Parties = []Party{PartyDemocrat, PartyRepublican, PartyIndependent}

// ParseParty maps loose party labels ("D", "Democratic", "gop") to a Party.
// Anything unrecognized becomes PartyIndependent.
func ParseParty(s string) Party {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "democrat", "democratic", "dem", "d":
		return PartyDemocrat
	case "republican", "rep", "gop", "r":
		return PartyRepublican
	default:
		return PartyIndependent
	}
}

// Adjective returns the party in attributive form ("Democratic senator").
func (p Party) Adjective() string {
	if p == PartyDemocrat {
		return "Democratic"
	}
	return string(p)
}

// Seniority distinguishes the two senators of a state.
type Seniority string

const (
	SenioritySenior Seniority = "Senior"
	SeniorityJunior Seniority = "Junior"
)

// Seniorities lists both seniority values in a stable order.
var Seniorities = []Seniority{SenioritySenior, SeniorityJunior}

// ParseSeniority maps a label to a Seniority. Anything other than "senior"
// becomes SeniorityJunior.
func ParseSeniority(s string) Seniority {
	if strings.EqualFold(strings.TrimSpace(s), "senior") {
		return SenioritySenior
	}
	return SeniorityJunior
}

// Lower returns the seniority in prompt form ("senior", "junior").
func (s Seniority) Lower() string {
	return strings.ToLower(string(s))
}

// Entity is a single politician.
type Entity struct {
	Name        string
	State       string
	Party       Party
	Seniority   Seniority
	PortraitRef string // empty when no portrait asset exists
}

// HasPortrait reports whether the entity has a portrait asset.
func (e Entity) HasPortrait() bool {
	return e.PortraitRef != ""
}
