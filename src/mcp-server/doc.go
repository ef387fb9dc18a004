// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides an [MCP] server exposing the goutils JSON and
// certificate helpers as tools.
//
// Tools:
//   - json_normalize, json_validate, json_schema: schema-typed JSON through [jsonobject]
//   - generate_csr: key and certificate signing request generation
//   - inspect_pfx: PKCS#12 bundle listing
//
// Resources:
//   - config://template: example configuration
//   - docs://schema-format: schema document reference
//   - info://version: server version and tools
//
// The server is assembled with [ServerBuilder] and exposed on stdio by
// [CLIFramework]. The configuration file (JSON, JSONC or YAML) comes from
// the --config flag or the [ConfigEnv] environment variable.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
// [jsonobject]: https://pkg.go.dev/github.com/H0llyW00dzZ/goutils/src/jsonobject
package mcpserver
