// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonobject

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Option configures [Marshal].
type Option func(*encodeOptions)

type encodeOptions struct {
	excludeNull bool
	nullIfEmpty bool
	indent      int
	pretty      bool
}

// ExcludeNull omits object fields whose final value is null instead of
// emitting them as "field": null.
func ExcludeNull(enabled bool) Option {
	return func(o *encodeOptions) { o.excludeNull = enabled }
}

// NullIfEmpty replaces empty objects, maps and lists with null before
// encoding. An object or map is empty when all of its values are empty; a list
// is empty when it has no elements or only empty elements. Combined with
// [ExcludeNull], null list elements are dropped as well.
func NullIfEmpty(enabled bool) Option {
	return func(o *encodeOptions) { o.nullIfEmpty = enabled }
}

// Indent pretty-prints the output with width spaces per nesting level. Without
// this option the output is compact. A negative width is rejected by [Marshal].
func Indent(width int) Option {
	return func(o *encodeOptions) {
		o.indent = width
		o.pretty = true
	}
}

// Marshal encodes obj as a JSON object whose keys are the declared field names
// in declaration order.
//
// The transformations selected by the options are applied to a new tree; obj
// and the values it references are never modified, so encoding the same object
// twice yields the same output. The root object itself is never collapsed to
// null.
//
// Marshal fails with [ErrInvalidArgument] when obj is nil or has no schema, or
// when the indent width is negative.
func Marshal(obj Object, opts ...Option) ([]byte, error) {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	if isNil(obj) || obj.Schema() == nil {
		return nil, fmt.Errorf("%w: not a schema-typed object: %T", ErrInvalidArgument, obj)
	}
	if o.pretty && o.indent < 0 {
		return nil, fmt.Errorf("%w: negative indent %d", ErrInvalidArgument, o.indent)
	}

	e := encoder{opts: o}
	tree, err := e.object(obj, "")
	if err != nil {
		return nil, err
	}

	var data []byte
	if o.pretty {
		data, err = json.MarshalIndent(tree, "", strings.Repeat(" ", o.indent))
	} else {
		data, err = json.Marshal(tree)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return data, nil
}

// ToJSON is like [Marshal] but returns the encoded text as a string.
func ToJSON(obj Object, opts ...Option) (string, error) {
	data, err := Marshal(obj, opts...)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// encoder builds the tree handed to encoding/json.
type encoder struct{ opts encodeOptions }

// object converts obj to an ordered map of its fields, applying null-collapse
// to every field value and dropping null fields under excludeNull.
func (e *encoder) object(obj Object, path string) (*orderedmap.OrderedMap[string, any], error) {
	s := obj.Schema()
	out := orderedmap.New[string, any](s.Len())

	for _, f := range s.fields {
		fieldPath := joinPath(path, f.Name)
		v, err := obj.Get(f.Name)
		if err != nil {
			return nil, err
		}

		tv, err := e.value(v, fieldPath)
		if err != nil {
			return nil, err
		}

		if tv == nil && e.opts.excludeNull {
			continue
		}
		out.Set(f.Name, tv)
	}

	return out, nil
}

// value converts a field value or list element. Under nullIfEmpty an empty
// value becomes nil before it is converted.
func (e *encoder) value(v any, path string) (any, error) {
	if isNil(v) {
		return nil, nil
	}
	if e.opts.nullIfEmpty && isEmpty(v) {
		return nil, nil
	}

	switch x := v.(type) {
	case Object:
		if x.Schema() == nil {
			return nil, fieldError(path, ErrInvalidArgument, "object %T has no schema", x)
		}
		return e.object(x, path)
	case []any:
		return e.list(x, path)
	case map[string]any:
		return e.mapping(x, path)
	}

	// Slices of concrete element types, e.g. from custom Object implementations.
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return e.list(elems, path)
	}

	return v, nil
}

func (e *encoder) list(list []any, path string) (any, error) {
	out := make([]any, 0, len(list))
	for i, el := range list {
		tv, err := e.value(el, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		if tv == nil && e.opts.nullIfEmpty && e.opts.excludeNull {
			continue
		}
		out = append(out, tv)
	}
	return out, nil
}

// mapping converts a plain map held by an any-typed field. Keys are sorted and
// null entries are kept.
func (e *encoder) mapping(m map[string]any, path string) (any, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := orderedmap.New[string, any](len(m))
	for _, k := range keys {
		tv, err := e.value(m[k], joinPath(path, k))
		if err != nil {
			return nil, err
		}
		out.Set(k, tv)
	}
	return out, nil
}

// isEmpty reports whether v is empty: null, an object or map whose values are
// all empty, or a list with no elements or only empty elements. Scalars,
// including "" and 0, are never empty.
func isEmpty(v any) bool {
	if isNil(v) {
		return true
	}

	switch x := v.(type) {
	case Object:
		s := x.Schema()
		if s == nil {
			return false
		}
		for _, f := range s.fields {
			fv, err := x.Get(f.Name)
			if err != nil || !isEmpty(fv) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, e := range x {
			if !isEmpty(e) {
				return false
			}
		}
		return true
	case []any:
		for _, e := range x {
			if !isEmpty(e) {
				return false
			}
		}
		return true
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		for i := range rv.Len() {
			if !isEmpty(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	}

	return false
}
