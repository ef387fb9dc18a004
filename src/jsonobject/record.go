// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonobject

// Object is implemented by every schema-typed value the encoder can walk.
//
// Get must accept exactly the field names declared by Schema and return the
// current value of the field: nil, a scalar, a nested Object, or a list.
// [*Record] is the stock implementation; applications may implement Object on
// their own types to serialize them with [Marshal].
type Object interface {
	Schema() *Schema
	Get(name string) (any, error)
}

// Record is an instance of a [Schema]. It holds one value per declared field.
//
// A Record is not safe for concurrent mutation. Create records with
// [Schema.New] or [Unmarshal].
type Record struct {
	schema *Schema
	values []any
}

var _ Object = (*Record)(nil)

// Schema returns the schema the record was created from.
func (r *Record) Schema() *Schema { return r.schema }

// Get returns the current value of the named field. Unset fields are nil.
func (r *Record) Get(name string) (any, error) {
	i, ok := r.schema.index[name]
	if !ok {
		return nil, &FieldError{Path: name, Err: ErrUnknownField}
	}
	return r.values[i], nil
}

// Set assigns v to the named field after checking it against the declared type.
//
// Accepted values per kind:
//   - string: string
//   - integer: any Go integer type (stored as int64)
//   - number: any Go integer or float type (stored as float64)
//   - boolean: bool
//   - any: any JSON-compatible value
//   - object: an [Object] of the declared schema
//   - list: a slice whose elements match the element type (stored as []any)
//
// nil clears the field. A nil slice or nil object pointer also clears it.
func (r *Record) Set(name string, v any) error {
	i, ok := r.schema.index[name]
	if !ok {
		return &FieldError{Path: name, Err: ErrUnknownField}
	}

	converted, err := convert(r.schema.fields[i].Type, v, name)
	if err != nil {
		return err
	}

	r.values[i] = converted
	return nil
}

// MustSet is like [Set] but panics on error. It returns r so that records
// built from fixed schemas can be filled in one expression.
func (r *Record) MustSet(name string, v any) *Record {
	if err := r.Set(name, v); err != nil {
		panic(err)
	}
	return r
}

// IsNull reports whether the named field is unset. Unknown fields report true.
func (r *Record) IsNull(name string) bool {
	v, err := r.Get(name)
	return err != nil || v == nil
}

// String returns the value of a string field.
func (r *Record) String(name string) (string, bool) {
	v, _ := r.Get(name)
	s, ok := v.(string)
	return s, ok
}

// Int returns the value of an integer field.
func (r *Record) Int(name string) (int64, bool) {
	v, _ := r.Get(name)
	n, ok := v.(int64)
	return n, ok
}

// Float returns the value of a number field.
func (r *Record) Float(name string) (float64, bool) {
	v, _ := r.Get(name)
	f, ok := v.(float64)
	return f, ok
}

// Bool returns the value of a boolean field.
func (r *Record) Bool(name string) (bool, bool) {
	v, _ := r.Get(name)
	b, ok := v.(bool)
	return b, ok
}

// Object returns the nested record held by an object field, or nil.
func (r *Record) Object(name string) *Record {
	v, _ := r.Get(name)
	rec, _ := v.(*Record)
	return rec
}

// List returns the elements of a list field, or nil.
func (r *Record) List(name string) []any {
	v, _ := r.Get(name)
	list, _ := v.([]any)
	return list
}

// Clone returns a deep copy of the record. Nested records and lists are
// copied; objects of other implementations are shared.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := r.schema.New()
	for i, v := range r.values {
		out.values[i] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case *Record:
		return x.Clone()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
