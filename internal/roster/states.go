package roster

import "strings"

// States lists the 50 US states an entity may represent.
var States = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California",
	"Colorado", "Connecticut", "Delaware", "Florida", "Georgia",
	"Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland",
	"Massachusetts", "Michigan", "Minnesota", "Mississippi", "Missouri",
	"Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
	"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
	"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
}

var stateIndex = func() map[string]string {
	m := make(map[string]string, len(States))
	for _, s := range States {
		m[strings.ToLower(s)] = s
	}
	return m
}()

// CanonicalState returns the canonical spelling of a state name and whether
// it is one of the 50 states. Matching ignores case and surrounding space.
func CanonicalState(s string) (string, bool) {
	c, ok := stateIndex[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}
