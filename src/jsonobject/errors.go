// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonobject

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates that the input is not well-formed JSON.
	ErrParse = errors.New("jsonobject: malformed JSON")

	// ErrSchema indicates a missing or invalid schema definition.
	ErrSchema = errors.New("jsonobject: invalid schema")

	// ErrUnknownField indicates a field name the schema does not declare.
	ErrUnknownField = errors.New("jsonobject: unknown field")

	// ErrTypeMismatch indicates a value that does not match the declared field type.
	ErrTypeMismatch = errors.New("jsonobject: type mismatch")

	// ErrInvalidArgument indicates a caller passed a value that is not a usable schema-typed object.
	ErrInvalidArgument = errors.New("jsonobject: invalid argument")
)

// FieldError reports a failure tied to a specific field of an object graph.
//
// Path is the location of the field from the root object, using dots between
// object fields and brackets for list indexes (for example "children[1].age").
// Err is one of the package sentinel errors, so callers can test it with
// [errors.Is].
type FieldError struct {
	Path   string
	Err    error
	Detail string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%v: key=%s", e.Err, e.Path)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the underlying sentinel error.
func (e *FieldError) Unwrap() error { return e.Err }

func fieldError(path string, err error, format string, args ...any) error {
	return &FieldError{Path: path, Err: err, Detail: fmt.Sprintf(format, args...)}
}

// joinPath appends a field name to a parent path.
func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// indexPath appends a list index to a parent path.
func indexPath(parent string, i int) string { return fmt.Sprintf("%s[%d]", parent, i) }

// rootPath names the document root in error paths.
func rootPath(path string) string {
	if path == "" {
		return "$"
	}
	return path
}
