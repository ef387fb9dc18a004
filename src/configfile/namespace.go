// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package configfile

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/H0llyW00dzZ/goutils/src/jsonobject"
)

// Namespace is a parsed configuration object.
//
// Keys are case-sensitive. A dotted key such as "server.tls.cert" walks nested
// objects; a key that exists literally with dots takes precedence.
// A Namespace is read-only and safe for concurrent use.
type Namespace struct {
	values map[string]any
}

// Get returns the value at key.
func (n *Namespace) Get(key string) (any, bool) {
	if v, ok := n.values[key]; ok {
		return v, true
	}

	var cur any = n.values
	for part := range strings.SplitSeq(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Has reports whether a value, possibly null, exists at key.
func (n *Namespace) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Keys returns the top-level keys in sorted order.
func (n *Namespace) Keys() []string {
	keys := make([]string, 0, len(n.values))
	for k := range n.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sub returns the object at key as its own namespace.
func (n *Namespace) Sub(key string) (*Namespace, error) {
	v, err := n.lookup(key)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s holds %T", ErrNotObject, key, v)
	}
	return &Namespace{values: m}, nil
}

// String returns the value at key converted to a string.
func (n *Namespace) String(key string) (string, error) {
	return get(n, key, cast.ToStringE)
}

// Int returns the value at key converted to an int.
func (n *Namespace) Int(key string) (int, error) {
	return get(n, key, cast.ToIntE)
}

// Bool returns the value at key converted to a bool.
func (n *Namespace) Bool(key string) (bool, error) {
	return get(n, key, cast.ToBoolE)
}

// Float64 returns the value at key converted to a float64.
func (n *Namespace) Float64(key string) (float64, error) {
	return get(n, key, cast.ToFloat64E)
}

// StringSlice returns the value at key converted to a []string.
func (n *Namespace) StringSlice(key string) ([]string, error) {
	return get(n, key, cast.ToStringSliceE)
}

// StringOr returns the string at key, or def when the key is missing or not convertible.
func (n *Namespace) StringOr(key, def string) string {
	if s, err := n.String(key); err == nil {
		return s
	}
	return def
}

// IntOr returns the int at key, or def when the key is missing or not convertible.
func (n *Namespace) IntOr(key string, def int) int {
	if i, err := n.Int(key); err == nil {
		return i
	}
	return def
}

// Decode stores the whole namespace in the value pointed to by v, using the
// same rules as [encoding/json].
func (n *Namespace) Decode(v any) error {
	data, err := json.Marshal(n.values)
	if err != nil {
		return fmt.Errorf("configfile: encode: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("configfile: decode: %w", err)
	}
	return nil
}

// Object decodes the namespace into a record of schema. Keys the schema does
// not declare are rejected with [jsonobject.ErrUnknownField].
func (n *Namespace) Object(schema *jsonobject.Schema) (*jsonobject.Record, error) {
	data, err := json.Marshal(n.values)
	if err != nil {
		return nil, fmt.Errorf("configfile: encode: %w", err)
	}
	return jsonobject.Unmarshal(data, schema)
}

func (n *Namespace) lookup(key string) (any, error) {
	v, ok := n.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return v, nil
}

func get[T any](n *Namespace, key string, conv func(any) (T, error)) (T, error) {
	var zero T
	v, err := n.lookup(key)
	if err != nil {
		return zero, err
	}
	out, err := conv(v)
	if err != nil {
		return zero, fmt.Errorf("configfile: %s: %w", key, err)
	}
	return out, nil
}
