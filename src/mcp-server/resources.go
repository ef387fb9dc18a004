// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs.
const (
	configTemplateURI = "config://template"
	schemaFormatURI   = "docs://schema-format"
	versionInfoURI    = "info://version"
)

// createResources creates the static resources and those backed by the
// embedded templates.
//
// Parameters:
//   - version: Server version reported by info://version
//   - tools, toolsWithConfig: Registered tools listed by info://version
//
// Returns:
//   - Resources that need no embedded files
//   - Resources that read the embedded templates
func createResources(version string, tools []ToolDefinition, toolsWithConfig []ToolDefinitionWithConfig) ([]server.ServerResource, []ServerResourceWithEmbed) {
	infos, _ := collectToolInfo(tools, toolsWithConfig)

	resources := []server.ServerResource{
		{
			Resource: mcp.NewResource(
				configTemplateURI,
				"Server Configuration Template",
				mcp.WithResourceDescription("Example configuration file with the default values"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(
				versionInfoURI,
				"Version Information",
				mcp.WithResourceDescription("Server version and registered tools"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: versionResourceHandler(version, infos),
		},
	}

	resourcesWithEmbed := []ServerResourceWithEmbed{
		{
			Resource: mcp.NewResource(
				schemaFormatURI,
				"Schema Document Format",
				mcp.WithResourceDescription("Syntax of the schema documents accepted by the JSON tools"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleSchemaFormatResource,
		},
	}

	return resources, resourcesWithEmbed
}
