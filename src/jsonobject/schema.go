// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonobject

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a declared field type.
type Kind uint8

const (
	// KindInvalid is the zero Kind; a field of this kind cannot be declared.
	KindInvalid Kind = iota
	// KindString holds a JSON string.
	KindString
	// KindInteger holds a JSON number without a fractional part, stored as int64.
	KindInteger
	// KindNumber holds any JSON number, stored as float64.
	KindNumber
	// KindBoolean holds a JSON boolean.
	KindBoolean
	// KindAny holds any JSON value without validation.
	KindAny
	// KindObject holds a nested schema-typed object.
	KindObject
	// KindList holds a JSON array.
	KindList
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindString:  "string",
	KindInteger: "integer",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindAny:     "any",
	KindObject:  "object",
	KindList:    "list",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsScalar reports whether the kind is one of the scalar kinds, including [KindAny].
func (k Kind) IsScalar() bool { return k >= KindString && k <= KindAny }

// Type describes the declared type of a field.
//
// The zero Type is invalid. Use the predeclared scalar types, [ObjectOf],
// [ListOf] or [UntypedList] to build one.
type Type struct {
	kind   Kind
	schema *Schema
	elem   *Type
}

// Predeclared scalar types.
var (
	String  = Type{kind: KindString}
	Integer = Type{kind: KindInteger}
	Number  = Type{kind: KindNumber}
	Boolean = Type{kind: KindBoolean}
	Any     = Type{kind: KindAny}

	// UntypedList is a list whose element type is unknown. Elements are
	// accepted as-is, like fields of type [Any].
	UntypedList = Type{kind: KindList}
)

// ObjectOf returns the type of a field holding an object of schema s.
func ObjectOf(s *Schema) Type { return Type{kind: KindObject, schema: s} }

// ListOf returns the type of a field holding a list of elem values.
func ListOf(elem Type) Type { return Type{kind: KindList, elem: &elem} }

// Kind returns the kind of t.
func (t Type) Kind() Kind { return t.kind }

// Schema returns the object schema of a [KindObject] type, or nil.
func (t Type) Schema() *Schema { return t.schema }

// Elem returns the element type of a [KindList] type. The boolean is false
// when the element type is unknown or t is not a list.
func (t Type) Elem() (Type, bool) {
	if t.kind != KindList || t.elem == nil {
		return Type{}, false
	}
	return *t.elem, true
}

// Equal reports whether t and u describe the same type. Object types are equal
// only when they refer to the same *Schema.
func (t Type) Equal(u Type) bool {
	if t.kind != u.kind {
		return false
	}
	switch t.kind {
	case KindObject:
		return t.schema == u.schema
	case KindList:
		te, tok := t.Elem()
		ue, uok := u.Elem()
		if tok != uok {
			return false
		}
		return !tok || te.Equal(ue)
	default:
		return true
	}
}

// String renders t in the notation used by schema documents, e.g. "string",
// "Child", "[Child]" or "[]".
func (t Type) String() string {
	switch t.kind {
	case KindObject:
		if t.schema == nil {
			return "<nil schema>"
		}
		return t.schema.name
	case KindList:
		if elem, ok := t.Elem(); ok {
			return "[" + elem.String() + "]"
		}
		return "[]"
	default:
		return t.kind.String()
	}
}

func (t Type) validate() error {
	switch t.kind {
	case KindString, KindInteger, KindNumber, KindBoolean, KindAny:
		return nil
	case KindObject:
		if t.schema == nil {
			return errors.New("object type without schema")
		}
		return nil
	case KindList:
		if elem, ok := t.Elem(); ok {
			return elem.validate()
		}
		return nil
	default:
		return fmt.Errorf("invalid type %s", t.kind)
	}
}

// Field declares one named field of a schema.
type Field struct {
	Name string
	Type Type
}

// Schema is the immutable field table of a schema-typed object type.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewSchema builds a schema named name with the given fields in order.
//
// It fails with [ErrSchema] when a field name is empty or repeated, or when a
// field type is invalid (the zero [Type], or an object type with a nil schema).
func NewSchema(name string, fields ...Field) (*Schema, error) {
	s := &Schema{
		name:   name,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: %s: empty field name", ErrSchema, name)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate field %q", ErrSchema, name, f.Name)
		}
		if err := f.Type.validate(); err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", ErrSchema, name, f.Name, err)
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	return s, nil
}

// MustSchema is like [NewSchema] but panics on error. It is intended for
// package-level schema variables.
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.fields) }

// Fields returns a copy of the declared fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// FieldNames returns the declared field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the declared type of the named field.
func (s *Schema) Lookup(name string) (Type, bool) {
	i, ok := s.index[name]
	if !ok {
		return Type{}, false
	}
	return s.fields[i].Type, true
}

// Has reports whether the schema declares the named field.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// FieldKind returns the kind of the named field: a scalar kind, [KindObject]
// or [KindList].
func (s *Schema) FieldKind(name string) (Kind, error) {
	t, ok := s.Lookup(name)
	if !ok {
		return KindInvalid, &FieldError{Path: name, Err: ErrUnknownField}
	}
	return t.kind, nil
}

// ElementType returns the element type of the named list field. The boolean
// is false when the list was declared without an element type. Querying a
// field that is not a list fails with [ErrTypeMismatch].
func (s *Schema) ElementType(name string) (Type, bool, error) {
	t, ok := s.Lookup(name)
	if !ok {
		return Type{}, false, &FieldError{Path: name, Err: ErrUnknownField}
	}
	if t.kind != KindList {
		return Type{}, false, fieldError(name, ErrTypeMismatch, "declared %s, not a list", t)
	}
	elem, known := t.Elem()
	return elem, known, nil
}

// MatchesDeclaredType reports whether candidate matches the declared type of
// the named field. List fields only compare the container kind and ignore the
// element type; other fields compare the declared type exactly. Unknown fields
// never match.
func (s *Schema) MatchesDeclaredType(name string, candidate Type) bool {
	t, ok := s.Lookup(name)
	if !ok {
		return false
	}
	if t.kind == KindList {
		return candidate.kind == KindList
	}
	return t.Equal(candidate)
}

// New returns a record of this schema with every field set to null.
func (s *Schema) New() *Record {
	return &Record{schema: s, values: make([]any, len(s.fields))}
}

// String describes the schema as "Name{field: type, ...}".
func (s *Schema) String() string {
	var b strings.Builder
	b.WriteString(s.name)
	b.WriteByte('{')
	for i, f := range s.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Type.String())
	}
	b.WriteByte('}')
	return b.String()
}
