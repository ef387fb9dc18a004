// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonobject

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/xeipuuv/gojsonschema"
)

const draft07 = "http://json-schema.org/draft-07/schema#"

// ValidationError describes one violation found by [Validate].
type ValidationError struct {
	// Field is the location of the violation, "(root)" for the document itself.
	Field string
	// Description is a human-readable explanation.
	Description string
}

func (v ValidationError) String() string { return v.Field + ": " + v.Description }

// JSONSchema renders schema as a draft-07 [JSON Schema] document.
//
// Every field is nullable and objects reject undeclared properties, matching
// what [Unmarshal] accepts. Nested object types are emitted under
// "definitions" and referenced with "$ref".
//
// [JSON Schema]: https://json-schema.org
func JSONSchema(schema *Schema) map[string]any {
	g := &schemaGen{
		defs:  make(map[string]any),
		names: make(map[*Schema]string),
		used:  map[string]bool{schema.name: true},
	}

	doc := g.object(schema)
	doc["$schema"] = draft07
	doc["title"] = schema.name
	if len(g.defs) > 0 {
		doc["definitions"] = g.defs
	}
	return doc
}

type schemaGen struct {
	defs  map[string]any
	names map[*Schema]string
	used  map[string]bool
}

func (g *schemaGen) object(s *Schema) map[string]any {
	props := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		props[f.Name] = g.nullable(f.Type)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

// nullable returns the schema for a field or list element of type t, which may
// also be null.
func (g *schemaGen) nullable(t Type) map[string]any {
	switch t.kind {
	case KindString, KindInteger, KindNumber, KindBoolean:
		return map[string]any{"type": []string{t.kind.String(), "null"}}
	case KindObject:
		return map[string]any{
			"anyOf": []any{
				map[string]any{"$ref": "#/definitions/" + g.ref(t.schema)},
				map[string]any{"type": "null"},
			},
		}
	case KindList:
		out := map[string]any{"type": []string{"array", "null"}}
		if elem, ok := t.Elem(); ok {
			out["items"] = g.nullable(elem)
		}
		return out
	default:
		return map[string]any{}
	}
}

// ref returns the definitions key for s, generating its definition on first
// use. Distinct schemas sharing a name get numbered keys.
func (g *schemaGen) ref(s *Schema) string {
	if name, ok := g.names[s]; ok {
		return name
	}

	name := s.name
	for i := 2; g.used[name]; i++ {
		name = s.name + "_" + strconv.Itoa(i)
	}
	g.used[name] = true
	g.names[s] = name
	g.defs[name] = g.object(s)
	return name
}

// Validate checks data against the JSON Schema of schema and returns every
// violation found, or nil when the document is valid. Unlike [Unmarshal] it
// does not stop at the first problem. The text null is valid for any schema.
func Validate(data []byte, schema *Schema) ([]ValidationError, error) {
	if schema == nil {
		return nil, fmt.Errorf("%w: no schema for target type", ErrSchema)
	}

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, nullLiteral) {
		return nil, nil
	}
	if !json.Valid(data) {
		var probe any
		err := json.Unmarshal(data, &probe)
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(JSONSchema(schema)),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if result.Valid() {
		return nil, nil
	}

	out := make([]ValidationError, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		// anyOf failures are followed by the errors of the closest branch.
		if re.Type() == "number_any_of" {
			continue
		}
		out = append(out, ValidationError{Field: re.Field(), Description: re.Description()})
	}
	return out, nil
}
