// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonobject

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var nullLiteral = []byte("null")

// Unmarshal decodes a JSON object into a new record of schema.
//
// The input text null yields a nil record and no error. Every key of the
// object must be declared by the schema; values are checked against the
// declared field types, nested objects and lists are decoded recursively, and
// fields absent from the input stay null. Keys are processed in document
// order, so the first offending key is the one reported.
//
// Errors:
//   - [ErrSchema]: schema is nil
//   - [ErrParse]: data is not well-formed JSON
//   - [ErrUnknownField]: a key is not declared by the schema
//   - [ErrTypeMismatch]: a value does not match its declared type
func Unmarshal(data []byte, schema *Schema) (*Record, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, nullLiteral) {
		return nil, nil
	}

	if schema == nil {
		return nil, fmt.Errorf("%w: no schema for target type", ErrSchema)
	}

	if !json.Valid(data) {
		var probe any
		err := json.Unmarshal(data, &probe)
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return decodeObject(data, schema, "")
}

// FromJSON is like [Unmarshal] but takes the input as a string.
func FromJSON(s string, schema *Schema) (*Record, error) {
	return Unmarshal([]byte(s), schema)
}

// decodeObject decodes a JSON object known to be well-formed.
func decodeObject(raw []byte, schema *Schema, path string) (*Record, error) {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, nullLiteral) {
		return nil, nil
	}
	if len(raw) == 0 || raw[0] != '{' {
		return nil, fieldError(rootPath(path), ErrTypeMismatch, "expected object %s, got %s", schema.name, jsonKind(raw))
	}

	members := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(raw, members); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, rootPath(path), err)
	}

	rec := schema.New()
	for pair := members.Oldest(); pair != nil; pair = pair.Next() {
		fieldPath := joinPath(path, pair.Key)

		i, ok := schema.index[pair.Key]
		if !ok {
			return nil, fieldError(fieldPath, ErrUnknownField, "not declared by %s", schema.name)
		}

		v, err := decodeValue(pair.Value, schema.fields[i].Type, fieldPath)
		if err != nil {
			return nil, err
		}
		rec.values[i] = v
	}

	return rec, nil
}

func decodeValue(raw json.RawMessage, t Type, path string) (any, error) {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, nullLiteral) {
		return nil, nil
	}

	switch t.kind {
	case KindObject:
		rec, err := decodeObject(raw, t.schema, path)
		if err != nil || rec == nil {
			return nil, err
		}
		return rec, nil
	case KindList:
		return decodeList(raw, t, path)
	}

	v, err := decodeJSON(raw, path)
	if err != nil {
		return nil, err
	}
	return convert(t, v, path)
}

func decodeList(raw json.RawMessage, t Type, path string) (any, error) {
	if raw[0] != '[' {
		return nil, fieldError(path, ErrTypeMismatch, "expected %s, got %s", t, jsonKind(raw))
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	elem, known := t.Elem()
	out := make([]any, len(elems))
	for i, e := range elems {
		elemPath := indexPath(path, i)

		var (
			v   any
			err error
		)
		if known {
			v, err = decodeValue(e, elem, elemPath)
		} else {
			v, err = decodeAny(e, elemPath)
		}
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// decodeJSON decodes raw into generic JSON values, keeping numbers as
// json.Number so convert can check them against the declared type.
func decodeJSON(raw []byte, path string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	return v, nil
}

// decodeAny is decodeJSON with numbers normalized to int64 or float64.
func decodeAny(raw []byte, path string) (any, error) {
	v, err := decodeJSON(raw, path)
	if err != nil {
		return nil, err
	}
	return normalizeAny(v), nil
}

// jsonKind names the JSON type of a well-formed value by its first byte.
func jsonKind(raw []byte) string {
	if len(raw) == 0 {
		return "nothing"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
