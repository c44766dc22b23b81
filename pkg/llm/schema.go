package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	schemavalidate "github.com/santhosh-tekuri/jsonschema/v5"
)

// DeriveSchema produces a JSON Schema for a Go struct type, suitable for
// tool parameter listings and schema-constrained responses. Schemas are
// inlined (no $defs) and additionalProperties is disallowed so the provider
// can enforce them strictly.
func DeriveSchema(v any) (string, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(v)
	schema.Version = "" // providers reject $schema in strict mode
	data, err := json.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("failed to marshal derived schema: %w", err)
	}
	return string(data), nil
}

// MustDeriveSchema is DeriveSchema for package-level schema variables.
func MustDeriveSchema(v any) string {
	s, err := DeriveSchema(v)
	if err != nil {
		panic(err)
	}
	return s
}

var compiledSchemas sync.Map // schema text -> *schemavalidate.Schema

// ValidateJSON checks a JSON document against a JSON Schema. Compiled
// schemas are cached by their text.
func ValidateJSON(schemaJSON, doc string) error {
	var compiled *schemavalidate.Schema
	if cached, ok := compiledSchemas.Load(schemaJSON); ok {
		compiled = cached.(*schemavalidate.Schema)
	} else {
		c, err := schemavalidate.CompileString("schema.json", schemaJSON)
		if err != nil {
			return fmt.Errorf("failed to compile schema: %w", err)
		}
		compiledSchemas.Store(schemaJSON, c)
		compiled = c
	}

	var value any
	if err := json.Unmarshal([]byte(doc), &value); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiled.Validate(value); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
