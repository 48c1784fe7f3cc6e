package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordSchema enforces the record-shape invariant: every declared key
// present, every value a string, nothing extra.
type recordSchema struct {
	compiled *jsonschema.Schema
}

func mustCompileSchema(fields []FieldSpec) *recordSchema {
	properties := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))
	for _, f := range fields {
		properties[f.Key] = map[string]any{"type": "string"}
		required = append(required, f.Key)
	}
	doc := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}

	b, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("extract: marshal record schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("extract: add record schema: %v", err))
	}
	return &recordSchema{compiled: compiler.MustCompile("record.json")}
}

func (s *recordSchema) validate(rec map[string]string) error {
	v := make(map[string]any, len(rec))
	for k, val := range rec {
		v[k] = val
	}
	if err := s.compiled.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
