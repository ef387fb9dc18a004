// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonobject

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// convert checks v against t and returns it in its canonical stored form.
// path locates the value in error messages.
func convert(t Type, v any, path string) (any, error) {
	if isNil(v) {
		return nil, nil
	}

	switch t.kind {
	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case KindInteger:
		if n, ok := toInt64(v); ok {
			return n, nil
		}
	case KindNumber:
		if f, ok := toFloat64(v); ok {
			return f, nil
		}
	case KindBoolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindAny:
		return normalizeAny(v), nil
	case KindObject:
		if obj, ok := v.(Object); ok && obj.Schema() == t.schema {
			return obj, nil
		}
	case KindList:
		return convertList(t, v, path)
	}

	return nil, fieldError(path, ErrTypeMismatch, "expected %s, got %s", t, describe(v))
}

func convertList(t Type, v any, path string) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fieldError(path, ErrTypeMismatch, "expected %s, got %s", t, describe(v))
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, nil
	}

	elem, known := t.Elem()
	out := make([]any, rv.Len())
	for i := range out {
		e := rv.Index(i).Interface()
		if !known {
			out[i] = normalizeAny(e)
			continue
		}
		c, err := convert(elem, e, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// normalizeAny converts decoded JSON numbers to int64 or float64 and walks
// nested maps and slices. Other values are returned unchanged.
func normalizeAny(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalizeAny(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalizeAny(e)
		}
		return out
	default:
		return v
	}
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return uintToInt64(uint64(x))
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return uintToInt64(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, true
		}
		// Accept integral values written with a fraction or exponent, e.g. 10.0.
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	}
	return 0, false
}

func uintToInt64(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case json.Number:
		f, err := strconv.ParseFloat(x.String(), 64)
		return f, err == nil
	}
	if n, ok := toInt64(v); ok {
		return float64(n), true
	}
	return 0, false
}

// isNil reports whether v is nil or a typed nil pointer, map or slice.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// describe names the JSON type of v for error messages.
func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number " + x.String()
	case float32, float64:
		return "number"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case Object:
		if s := x.Schema(); s != nil {
			return "object " + s.Name()
		}
		return "object"
	}
	return reflect.TypeOf(v).String()
}
