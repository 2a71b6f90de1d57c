package roster

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// rosterSchemaURL identifies the roster schema inside the compiler.
const rosterSchemaURL = "schema://roster.json"

// rosterSchema describes the roster file layout. Party and seniority are
// free-form strings on purpose: unknown values are coerced, not rejected.
const rosterSchema = `{
	"type": "object",
	"properties": {
		"senators": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name":      {"type": "string", "minLength": 1},
					"state":     {"type": "string", "minLength": 1},
					"party":     {"type": "string"},
					"seniority": {"type": "string"},
					"portrait":  {"type": "string"}
				},
				"required": ["name", "state"]
			}
		}
	},
	"required": ["senators"]
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// schema returns the compiled roster schema, compiling it on first use.
func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(rosterSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse roster schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(rosterSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(rosterSchemaURL)
	})
	return compiledSchema, compileErr
}
