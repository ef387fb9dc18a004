// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/goutils/src/jsonobject"
	x509pki "github.com/H0llyW00dzZ/goutils/src/x509/pki"
)

var (
	validationIssueSchema = jsonobject.MustSchema("ValidationIssue",
		jsonobject.Field{Name: "field", Type: jsonobject.String},
		jsonobject.Field{Name: "description", Type: jsonobject.String},
	)
	validationReportSchema = jsonobject.MustSchema("ValidationReport",
		jsonobject.Field{Name: "valid", Type: jsonobject.Boolean},
		jsonobject.Field{Name: "errors", Type: jsonobject.ListOf(jsonobject.ObjectOf(validationIssueSchema))},
	)
)

// handleJSONNormalize decodes a document with the selected schema type and
// encodes it again with fields in declaration order.
//
// Parameters:
//   - ctx: Context for cancellation
//   - request: Tool call carrying the schema, type, document and encoding options
//   - config: Server configuration providing the schema file and encoding defaults
//
// Returns:
//   - The normalized JSON text, or an error result naming the offending path
//   - An error only for protocol failures
func handleJSONNormalize(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	document, err := request.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("document parameter required: %v", err)), nil
	}

	schema, err := resolveSchema(request, config)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to resolve schema: %v", err)), nil
	}

	indent, err := intArg(request, "indent", config.Defaults.Indent)
	if err != nil || indent < 0 {
		return mcp.NewToolResultError(fmt.Sprintf("invalid indent: %v", request.GetArguments()["indent"])), nil
	}

	rec, err := jsonobject.FromJSON(document, schema)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode document: %v", err)), nil
	}
	if rec == nil {
		return mcp.NewToolResultText("null"), nil
	}

	opts := []jsonobject.Option{
		jsonobject.ExcludeNull(request.GetBool("exclude_null", config.Defaults.ExcludeNull)),
		jsonobject.NullIfEmpty(request.GetBool("null_if_empty", config.Defaults.NullIfEmpty)),
	}
	if indent > 0 {
		opts = append(opts, jsonobject.Indent(indent))
	}

	out, err := jsonobject.ToJSON(rec, opts...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode document: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

// handleJSONValidate reports every schema violation in a document.
//
// The result is a ValidationReport object:
//
//	{"valid": false, "errors": [{"field": "children.0.age", "description": "..."}]}
func handleJSONValidate(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	document, err := request.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("document parameter required: %v", err)), nil
	}

	schema, err := resolveSchema(request, config)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to resolve schema: %v", err)), nil
	}

	violations, err := jsonobject.Validate([]byte(document), schema)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to validate document: %v", err)), nil
	}

	issues := make([]*jsonobject.Record, 0, len(violations))
	for _, v := range violations {
		issues = append(issues, validationIssueSchema.New().
			MustSet("field", v.Field).
			MustSet("description", v.Description))
	}

	report := validationReportSchema.New().
		MustSet("valid", len(violations) == 0).
		MustSet("errors", issues)

	out, err := jsonobject.ToJSON(report, jsonobject.ExcludeNull(true), jsonobject.NullIfEmpty(true), jsonobject.Indent(2))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode report: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

// handleJSONSchema prints the draft-07 JSON Schema of the selected type.
func handleJSONSchema(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	schema, err := resolveSchema(request, config)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to resolve schema: %v", err)), nil
	}

	out, err := json.MarshalIndent(jsonobject.JSONSchema(schema), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON Schema: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}

// handleGenerateCSR generates a private key and a certificate signing request.
//
// Parameters:
//   - ctx: Context for cancellation
//   - request: Tool call carrying the subject, SANs and key options
//   - config: Server configuration providing the default key type and size
//
// Returns:
//   - The CSR in PEM followed by the private key (PEM or OpenSSH, optionally encrypted)
//   - An error only for protocol failures
func handleGenerateCSR(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	commonName, err := request.RequireString("common_name")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("common_name parameter required: %v", err)), nil
	}

	keyType, err := x509pki.ParseKeyType(request.GetString("key_type", config.Defaults.KeyType))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// The configured size only applies to the configured key type.
	defSize := config.Defaults.KeySize
	if string(keyType) != config.Defaults.KeyType || defSize <= 0 {
		defSize = defaultKeySize(keyType)
	}
	keySize, err := intArg(request, "key_size", defSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid key_size: %v", err)), nil
	}

	subject := x509pki.Subject{
		CommonName:         commonName,
		Country:            request.GetString("country", ""),
		StateOrProvince:    request.GetString("state", ""),
		Locality:           request.GetString("locality", ""),
		Organization:       request.GetString("organization", ""),
		OrganizationalUnit: request.GetString("organizational_unit", ""),
		SANs:               splitList(request.GetString("sans", "")),
	}

	req, key, err := x509pki.GenerateCSR(keyType, keySize, subject)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate CSR: %v", err)), nil
	}

	var passphrase []byte
	if p := request.GetString("passphrase", ""); p != "" {
		passphrase = []byte(p)
	}

	var keyData []byte
	if request.GetBool("openssh", false) {
		keyData, err = x509pki.PrivateKeyToOpenSSH(key, commonName, passphrase)
	} else {
		keyData, err = x509pki.PrivateKeyToPEM(key, passphrase)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode private key: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Certificate signing request for %s (%s):\n\n", commonName, x509pki.KeyDescription(req.PublicKey))
	b.WriteString(x509pki.CSRToPEM(req, request.GetBool("single_line", false)))
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
	}
	b.WriteString("\nPrivate key:\n\n")
	b.Write(keyData)
	return mcp.NewToolResultText(b.String()), nil
}

// handleInspectPFX lists the certificates of a PKCS#12 bundle.
//
// The bundle may be given as a file path or base64 data. The table format
// renders a markdown table; json emits one CertificateInfo object per
// certificate; pem re-encodes the certificates.
func handleInspectPFX(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("pfx")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pfx parameter required: %v", err)), nil
	}

	data, err := readFileOrBase64(input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read PFX: %v", err)), nil
	}

	bundle, err := x509pki.LoadPFX(data, request.GetString("password", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var out string
	switch format := request.GetString("format", "table"); format {
	case "table":
		out = x509pki.RenderTable(bundle.Certificates)
	case "pem":
		out = string(x509pki.EncodeCertificatesPEM(bundle.Certificates))
	case "json":
		if out, err = certificatesJSON(bundle); err != nil {
			return nil, err
		}
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: must be one of table, pem, json", format)), nil
	}

	if request.GetBool("include_key", false) {
		keyPEM, err := x509pki.PrivateKeyToPEM(bundle.PrivateKey, nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode private key: %v", err)), nil
		}
		out = strings.TrimRight(out, "\n") + "\n\n" + string(keyPEM)
	}

	return mcp.NewToolResultText(out), nil
}

func certificatesJSON(bundle *x509pki.Bundle) (string, error) {
	records := x509pki.Summarize(bundle.Certificates)
	items := make([]json.RawMessage, 0, len(records))
	for _, rec := range records {
		data, err := jsonobject.Marshal(rec, jsonobject.ExcludeNull(true))
		if err != nil {
			return "", fmt.Errorf("failed to encode certificate summary: %w", err)
		}
		items = append(items, data)
	}
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal certificate summaries: %w", err)
	}
	return string(out), nil
}
