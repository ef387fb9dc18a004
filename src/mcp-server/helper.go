// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"

	"github.com/H0llyW00dzZ/goutils/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/goutils/src/jsonobject"
)

var (
	errNoSchema     = errors.New("no schema given and no schemaFile configured")
	errInvalidInput = errors.New("not a valid file path or base64 data")
)

// readFileOrBase64 reads input as a file path, falling back to base64 data.
func readFileOrBase64(input string) ([]byte, error) {
	if data, err := gc.ReadFile(input); err == nil {
		return data, nil
	}
	if data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(input)); err == nil {
		return data, nil
	}
	return nil, errInvalidInput
}

// resolveSchema picks the schema for a JSON tool call: the request's own
// schema document when present, otherwise the configured schema file.
func resolveSchema(request mcp.CallToolRequest, config *Config) (*jsonobject.Schema, error) {
	typeName := request.GetString("type", "")

	if doc := request.GetString("schema", ""); doc != "" {
		reg, err := jsonobject.ParseSchemas([]byte(doc))
		if err != nil {
			return nil, err
		}
		return reg.Resolve(typeName)
	}

	if config != nil && config.Schemas() != nil {
		return config.Schemas().Resolve(typeName)
	}
	return nil, errNoSchema
}

// splitList splits a comma-separated list, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// intArg returns the named numeric argument, or def when it is absent.
// JSON numbers arrive as float64, so fractional values are rejected.
func intArg(request mcp.CallToolRequest, name string, def int) (int, error) {
	v, ok := request.GetArguments()[name]
	if !ok || v == nil {
		return def, nil
	}
	if f, isFloat := v.(float64); isFloat && f != float64(int(f)) {
		return 0, errors.New(name + " must be a whole number")
	}
	return cast.ToIntE(v)
}
