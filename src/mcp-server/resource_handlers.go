// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/goutils/src/mcp-server/templates"
)

// handleConfigResource serves an example configuration file holding the
// default values.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	example := defaultConfig()
	example.SchemaFile = "schemas.yaml"

	jsonData, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      configTemplateURI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// versionResourceHandler returns a handler serving the server version and
// the registered tools.
func versionResourceHandler(version string, tools []toolInfo) ResourceHandler {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		toolList := make([]map[string]string, 0, len(tools))
		for _, t := range tools {
			toolList = append(toolList, map[string]string{"name": t.Name, "description": t.Description})
		}

		versionInfo := map[string]any{
			"name":    serverName,
			"version": version,
			"type":    "MCP Server",
			"capabilities": map[string]any{
				"tools":     toolList,
				"resources": []string{configTemplateURI, schemaFormatURI, versionInfoURI},
			},
		}

		jsonData, err := json.MarshalIndent(versionInfo, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal version info: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      versionInfoURI,
				MIMEType: "application/json",
				Text:     string(jsonData),
			},
		}, nil
	}
}

// handleSchemaFormatResource serves the schema document reference.
func handleSchemaFormatResource(ctx context.Context, request mcp.ReadResourceRequest, embed templates.EmbedFS) ([]mcp.ResourceContents, error) {
	content, err := embed.ReadFile(templates.SchemaFormatFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema format documentation: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      schemaFormatURI,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}
