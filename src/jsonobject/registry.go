// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonobject

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/goutils/src/internal/helper/gc"
)

// Registry maps type names to schemas.
//
// A Registry is built once, by [ParseSchemas] or by calling [Registry.Register]
// during initialization, and is read-only afterwards. Lookups are safe for
// concurrent use once registration has finished.
type Registry struct {
	schemas map[string]*Schema
	names   []string
	root    string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register adds s under its name. Registering two schemas with the same name
// fails with [ErrSchema].
func (r *Registry) Register(s *Schema) error {
	if s == nil {
		return fmt.Errorf("%w: nil schema", ErrSchema)
	}
	if _, dup := r.schemas[s.name]; dup {
		return fmt.Errorf("%w: type %q already registered", ErrSchema, s.name)
	}
	r.schemas[s.name] = s
	r.names = append(r.names, s.name)
	return nil
}

// Lookup returns the schema registered under name, or [ErrSchema] if there is
// none.
func (r *Registry) Lookup(name string) (*Schema, error) {
	s, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", ErrSchema, name)
	}
	return s, nil
}

// Root returns the schema named by the document's root entry.
func (r *Registry) Root() (*Schema, error) {
	if r.root == "" {
		return nil, fmt.Errorf("%w: no root type declared", ErrSchema)
	}
	return r.Lookup(r.root)
}

// Resolve returns the schema called name, or the root schema when name is
// empty.
func (r *Registry) Resolve(name string) (*Schema, error) {
	if name == "" {
		return r.Root()
	}
	return r.Lookup(name)
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

var builtinTypes = map[string]Type{
	"string":  String,
	"str":     String,
	"integer": Integer,
	"int":     Integer,
	"number":  Number,
	"float":   Number,
	"boolean": Boolean,
	"bool":    Boolean,
	"any":     Any,
}

// LoadSchemas reads a schema document from path. See [ParseSchemas].
func LoadSchemas(path string) (*Registry, error) {
	data, err := gc.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return ParseSchemas(data)
}

// ParseSchemas builds a registry from a YAML or JSON schema document:
//
//	root: Parent
//	types:
//	  Child:
//	    childName: string
//	    age: integer
//	  Parent:
//	    firstName: string
//	    children: [Child]
//
// Field types are a builtin name (string, integer, number, boolean, any, or the
// aliases str, int, float, bool), the name of another type in the document, a
// one-element sequence for a list of that type, or an empty sequence for a
// list of unknown element type. Types may reference types declared later in
// the document. Fields keep the order in which they are written.
//
// A malformed document fails with [ErrParse]; unknown or cyclic type
// references, multi-element list declarations and types named like a builtin
// fail with [ErrSchema].
func ParseSchemas(data []byte) (*Registry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: schema document must be a mapping", ErrSchema)
	}

	p := &schemaParser{
		defs:     make(map[string]*yaml.Node),
		building: make(map[string]bool),
		reg:      NewRegistry(),
	}

	top := doc.Content[0]
	var typesNode *yaml.Node
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "root":
			if val.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: root must be a type name", ErrSchema, val.Line)
			}
			p.reg.root = val.Value
		case "types":
			if val.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%w: line %d: types must be a mapping", ErrSchema, val.Line)
			}
			typesNode = val
		default:
			return nil, fmt.Errorf("%w: line %d: unexpected key %q", ErrSchema, key.Line, key.Value)
		}
	}
	if typesNode == nil {
		return nil, fmt.Errorf("%w: no types declared", ErrSchema)
	}

	for i := 0; i+1 < len(typesNode.Content); i += 2 {
		name, body := typesNode.Content[i].Value, typesNode.Content[i+1]
		if _, builtin := builtinTypes[name]; builtin {
			return nil, fmt.Errorf("%w: line %d: type name %q is reserved", ErrSchema, typesNode.Content[i].Line, name)
		}
		if _, dup := p.defs[name]; dup {
			return nil, fmt.Errorf("%w: line %d: type %q declared twice", ErrSchema, typesNode.Content[i].Line, name)
		}
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: line %d: type %q must be a mapping of fields", ErrSchema, body.Line, name)
		}
		p.defs[name] = body
		p.order = append(p.order, name)
	}

	for _, name := range p.order {
		if _, err := p.build(name); err != nil {
			return nil, err
		}
	}

	if p.reg.root != "" {
		if _, err := p.reg.Root(); err != nil {
			return nil, err
		}
	}

	return p.reg, nil
}

type schemaParser struct {
	defs     map[string]*yaml.Node
	order    []string
	building map[string]bool
	reg      *Registry
}

// build returns the schema called name, building the types it references
// first.
func (p *schemaParser) build(name string) (*Schema, error) {
	if s, ok := p.reg.schemas[name]; ok {
		return s, nil
	}
	body, ok := p.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", ErrSchema, name)
	}
	if p.building[name] {
		return nil, fmt.Errorf("%w: type %q references itself", ErrSchema, name)
	}
	p.building[name] = true
	defer delete(p.building, name)

	fields := make([]Field, 0, len(body.Content)/2)
	for i := 0; i+1 < len(body.Content); i += 2 {
		fieldName := body.Content[i].Value
		t, err := p.typeOf(body.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, fieldName, err)
		}
		fields = append(fields, Field{Name: fieldName, Type: t})
	}

	s, err := NewSchema(name, fields...)
	if err != nil {
		return nil, err
	}
	if err := p.reg.Register(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *schemaParser) typeOf(n *yaml.Node) (Type, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if t, ok := builtinTypes[n.Value]; ok {
			return t, nil
		}
		s, err := p.build(n.Value)
		if err != nil {
			return Type{}, err
		}
		return ObjectOf(s), nil
	case yaml.SequenceNode:
		switch len(n.Content) {
		case 0:
			return UntypedList, nil
		case 1:
			elem, err := p.typeOf(n.Content[0])
			if err != nil {
				return Type{}, err
			}
			return ListOf(elem), nil
		default:
			return Type{}, fmt.Errorf("%w: line %d: list declares %d element types, want one", ErrSchema, n.Line, len(n.Content))
		}
	default:
		return Type{}, fmt.Errorf("%w: line %d: invalid type expression", ErrSchema, n.Line)
	}
}
