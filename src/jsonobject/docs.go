// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonobject maps schema-typed objects to and from [JSON].
//
// A [Schema] declares, once per object type, the ordered set of fields and the
// type each field holds: a scalar, a nested object, or a list. A [Record] is an
// instance of a schema whose fields all start as null. [Marshal] walks a record
// graph and emits JSON, optionally dropping null fields ([ExcludeNull]) and
// collapsing empty objects and lists to null ([NullIfEmpty]). [Unmarshal] walks a
// document and a schema together and rejects keys the schema does not declare.
//
// Schemas are immutable once built and may be shared by any number of
// goroutines. Records are plain values owned by the caller; encoding never
// mutates them.
//
// Basic usage:
//
//	var child = jsonobject.MustSchema("Child",
//		jsonobject.Field{Name: "childName", Type: jsonobject.String},
//		jsonobject.Field{Name: "age", Type: jsonobject.Integer},
//	)
//
//	var parent = jsonobject.MustSchema("Parent",
//		jsonobject.Field{Name: "firstName", Type: jsonobject.String},
//		jsonobject.Field{Name: "children", Type: jsonobject.ListOf(jsonobject.ObjectOf(child))},
//	)
//
//	p := parent.New()
//	_ = p.Set("firstName", "Sam")
//	out, err := jsonobject.Marshal(p, jsonobject.ExcludeNull(true), jsonobject.Indent(4))
//
// Schemas can also be loaded from a YAML or JSON document with [ParseSchemas].
//
// [JSON]: https://www.json.org
package jsonobject
