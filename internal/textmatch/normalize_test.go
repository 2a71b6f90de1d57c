package textmatch

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Bernie Sanders", "bernie sanders"},
		{"  Bernie   Sanders  ", "bernie sanders"},
		{"Ben Ray Luján", "ben ray lujan"},
		{"JOSÉ", "jose"},
		{"Ossoff, Jon!", "ossoff jon"},
		{"Catherine Cortez-Masto", "catherine cortezmasto"},
		{"Mitch\tMcConnell\n", "mitch mcconnell"},
		{"R2 D2", "r2 d2"},
		{"", ""},
		{"   ", ""},
		{"!!!", ""},
	}

	for _, tc := range tests {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Ben Ray Luján",
		"  Sheldon   Whitehouse ",
		"Lisa MURKOWSKI",
		"Crème Brûlée",
		"áb̈c",
		"Angus King Jr.",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestLastName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"John Smith", "smith"},
		{"Ben Ray Luján", "lujan"},
		{"smith", "smith"},
		{"  ", ""},
		{"", ""},
		{"O'Brien", "obrien"},
	}

	for _, tc := range tests {
		got := LastName(tc.input)
		if got != tc.want {
			t.Errorf("LastName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
