// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Parameters shared by the JSON tools.
var (
	schemaParam = mcp.WithString("schema",
		mcp.Description("Schema document (YAML or JSON). Defaults to the server's configured schema file"),
	)
	typeParam = mcp.WithString("type",
		mcp.Description("Type to use (default: the schema document's root type)"),
	)
	documentParam = mcp.WithString("document",
		mcp.Required(),
		mcp.Description("JSON document to process"),
	)
)

// createTools creates and returns all MCP tool definitions with their handlers.
//
// Returns:
//   - A slice of ToolDefinition for tools without config dependencies
//   - A slice of ToolDefinitionWithConfig for tools that read server defaults
//
// The function defines the following tools:
//   - json_normalize: Decodes a document against a schema and encodes it again
//   - json_validate: Reports every schema violation in a document
//   - json_schema: Prints the draft-07 JSON Schema of a type
//   - generate_csr: Generates a private key and certificate signing request
//   - inspect_pfx: Lists the certificates of a PKCS#12 bundle
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("inspect_pfx",
				mcp.WithDescription("List the certificates and key of a PKCS#12 (PFX) bundle"),
				mcp.WithString("pfx",
					mcp.Required(),
					mcp.Description("PFX file path or base64-encoded PFX data"),
				),
				mcp.WithString("password",
					mcp.Description("PFX password"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'table', 'pem', or 'json' (default: table)"),
					mcp.DefaultString("table"),
				),
				mcp.WithBoolean("include_key",
					mcp.Description("Append the unencrypted private key in PEM (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleInspectPFX,
			Role:    "pfxInspector",
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("json_normalize",
				mcp.WithDescription("Decode a JSON document against a schema, rejecting undeclared keys, and encode it with fields in declaration order"),
				schemaParam,
				typeParam,
				documentParam,
				mcp.WithBoolean("exclude_null",
					mcp.Description("Omit null fields (default: from server config)"),
				),
				mcp.WithBoolean("null_if_empty",
					mcp.Description("Collapse empty objects and lists to null (default: from server config)"),
				),
				mcp.WithNumber("indent",
					mcp.Description("Spaces per indentation level, 0 for compact (default: from server config)"),
				),
			),
			Handler: handleJSONNormalize,
			Role:    "normalizer",
		},
		{
			Tool: mcp.NewTool("json_validate",
				mcp.WithDescription("Report every schema violation in a JSON document"),
				schemaParam,
				typeParam,
				documentParam,
			),
			Handler: handleJSONValidate,
			Role:    "validator",
		},
		{
			Tool: mcp.NewTool("json_schema",
				mcp.WithDescription("Print the draft-07 JSON Schema of a schema type"),
				schemaParam,
				typeParam,
			),
			Handler: handleJSONSchema,
			Role:    "describer",
		},
		{
			Tool: mcp.NewTool("generate_csr",
				mcp.WithDescription("Generate a private key and a SHA-256 signed certificate signing request"),
				mcp.WithString("common_name",
					mcp.Required(),
					mcp.Description("Subject common name"),
				),
				mcp.WithString("country",
					mcp.Description("Two-letter country code"),
				),
				mcp.WithString("state",
					mcp.Description("State or province"),
				),
				mcp.WithString("locality",
					mcp.Description("Locality"),
				),
				mcp.WithString("organization",
					mcp.Description("Organization"),
				),
				mcp.WithString("organizational_unit",
					mcp.Description("Organizational unit"),
				),
				mcp.WithString("sans",
					mcp.Description("Comma-separated subject alternative names (DNS names, IP addresses, emails)"),
				),
				mcp.WithString("key_type",
					mcp.Description("Key type: 'rsa' or 'ec' (default: from server config)"),
				),
				mcp.WithNumber("key_size",
					mcp.Description("Key size in bits (default: from server config)"),
				),
				mcp.WithString("passphrase",
					mcp.Description("Encrypt the private key with this passphrase"),
				),
				mcp.WithBoolean("single_line",
					mcp.Description("Encode the CSR on a single line (default: false)"),
					mcp.DefaultBool(false),
				),
				mcp.WithBoolean("openssh",
					mcp.Description("Encode the private key in OpenSSH format (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleGenerateCSR,
			Role:    "csrGenerator",
		},
	}

	return tools, toolsWithConfig
}
