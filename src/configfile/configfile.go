// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package configfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/goutils/src/internal/helper/gc"
)

var (
	// ErrNotObject indicates that a document or key does not hold an object.
	ErrNotObject = errors.New("configfile: not an object")

	// ErrKeyNotFound indicates that no value exists at the requested key.
	ErrKeyNotFound = errors.New("configfile: key not found")
)

// Format identifies a configuration file syntax.
type Format int

const (
	// FormatJSON is plain JSON (.json and unknown extensions).
	FormatJSON Format = iota
	// FormatJSONC is JSON with comments (.jsonc).
	FormatJSONC
	// FormatYAML is YAML (.yaml, .yml).
	FormatYAML
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSONC:
		return "jsonc"
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// DetectFormat determines the format of path from its extension, case-insensitively.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".jsonc":
		return FormatJSONC
	default:
		return FormatJSON
	}
}

// Load reads the file at path and parses it in the format given by its extension.
func Load(path string) (*Namespace, error) {
	data, err := gc.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ns, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ns, nil
}

// Parse parses data in the given format. An empty YAML document yields an
// empty namespace.
func Parse(data []byte, format Format) (*Namespace, error) {
	var root any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		if root == nil {
			return &Namespace{values: map[string]any{}}, nil
		}
		root = normalizeYAML(root)
	case FormatJSONC:
		data = jsonc.ToJSON(data)
		fallthrough
	default:
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to parse %s config file: %w", format, err)
		}
	}

	values, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %T", ErrNotObject, root)
	}
	return &Namespace{values: values}, nil
}

// normalizeYAML converts the map[any]any nodes yaml.v3 produces for
// non-string keys into map[string]any so values look like decoded JSON.
func normalizeYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normalizeYAML(e)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalizeYAML(e)
		}
		return out
	case []any:
		for i, e := range x {
			x[i] = normalizeYAML(e)
		}
		return x
	default:
		return v
	}
}
