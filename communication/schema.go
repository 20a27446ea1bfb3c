package communication

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/state.schema.json
var stateSchemaJSON string

const stateSchemaURL = "state.schema.json"

var (
	stateSchemaOnce sync.Once
	stateSchema     *jsonschema.Schema
	stateSchemaErr  error
)

// StateSchema returns the compiled schema observed states are checked against.
func StateSchema() (*jsonschema.Schema, error) {
	stateSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(stateSchemaURL, strings.NewReader(stateSchemaJSON)); err != nil {
			stateSchemaErr = fmt.Errorf("add state schema: %w", err)
			return
		}
		stateSchema, stateSchemaErr = c.Compile(stateSchemaURL)
	})
	return stateSchema, stateSchemaErr
}

// RawStateSchema is the schema document itself.
func RawStateSchema() []byte {
	return []byte(stateSchemaJSON)
}

// ValidateState checks raw JSON against the state schema.
func ValidateState(raw []byte) error {
	schema, err := StateSchema()
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	return nil
}
