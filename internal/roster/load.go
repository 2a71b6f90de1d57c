package roster

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
)

//go:embed data/senators.json
var defaultRosterJSON []byte

// record is the on-disk form of an entity.
type record struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	Party     string `json:"party"`
	Seniority string `json:"seniority"`
	Portrait  string `json:"portrait,omitempty"`
}

type file struct {
	Senators []record `json:"senators"`
}

// Default returns the embedded roster of the 100 sitting senators.
func Default(log *zap.Logger) (*Roster, error) {
	return Parse(defaultRosterJSON, log)
}

// LoadFile reads and parses a roster JSON file.
func LoadFile(path string, log *zap.Logger) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	r, err := Parse(data, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse validates roster JSON against the roster schema and converts it into
// a Roster. Unknown parties become Independent and unknown seniorities become
// Junior; entries naming something other than one of the 50 states are
// skipped with a warning.
func Parse(data []byte, log *zap.Logger) (*Roster, error) {
	if log == nil {
		log = zap.NewNop()
	}

	sch, err := schema()
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}

	entities := make([]Entity, 0, len(f.Senators))
	for i, rec := range f.Senators {
		e, ok := toEntity(rec, i, log)
		if ok {
			entities = append(entities, e)
		}
	}
	if len(entities) == 0 {
		return nil, ErrEmptyRoster
	}
	return New(entities), nil
}

func toEntity(rec record, idx int, log *zap.Logger) (Entity, bool) {
	name := strings.Join(strings.Fields(rec.Name), " ")
	state, ok := CanonicalState(rec.State)
	if name == "" || !ok {
		log.Warn("skipping roster entry",
			zap.Int("index", idx),
			zap.String("name", rec.Name),
			zap.String("state", rec.State))
		return Entity{}, false
	}

	party := ParseParty(rec.Party)
	if !strings.EqualFold(strings.TrimSpace(rec.Party), string(party)) {
		log.Debug("coerced party",
			zap.String("name", name),
			zap.String("raw", rec.Party),
			zap.String("party", string(party)))
	}
	seniority := ParseSeniority(rec.Seniority)
	if !strings.EqualFold(strings.TrimSpace(rec.Seniority), string(seniority)) {
		log.Debug("coerced seniority",
			zap.String("name", name),
			zap.String("raw", rec.Seniority),
			zap.String("seniority", string(seniority)))
	}

	return Entity{
		Name:        name,
		State:       state,
		Party:       party,
		Seniority:   seniority,
		PortraitRef: strings.TrimSpace(rec.Portrait),
	}, true
}

// Marshal encodes entities in the roster file format.
func Marshal(entities []Entity) ([]byte, error) {
	f := file{Senators: make([]record, len(entities))}
	for i, e := range entities {
		f.Senators[i] = record{
			Name:      e.Name,
			State:     e.State,
			Party:     string(e.Party),
			Seniority: string(e.Seniority),
			Portrait:  e.PortraitRef,
		}
	}
	return json.MarshalIndent(f, "", "  ")
}
