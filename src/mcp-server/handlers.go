// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/goutils/src/mcp-server/templates"
)

// instructionData holds the data used to populate the MCP server instructions template.
type instructionData struct {
	Tools     []toolInfo
	ToolRoles map[string]string // Maps tool roles to tool names
}

// toolInfo represents information about an MCP tool for template rendering.
type toolInfo struct {
	Name        string
	Description string
}

// collectToolInfo lists every tool in registration order and maps each role
// to its tool name.
func collectToolInfo(tools []ToolDefinition, toolsWithConfig []ToolDefinitionWithConfig) ([]toolInfo, map[string]string) {
	infos := make([]toolInfo, 0, len(tools)+len(toolsWithConfig))
	roles := make(map[string]string)

	add := func(name, description, role string) {
		infos = append(infos, toolInfo{Name: name, Description: description})
		if role != "" {
			roles[role] = name
		}
	}
	for _, tool := range toolsWithConfig {
		add(tool.Tool.Name, tool.Tool.Description, tool.Role)
	}
	for _, tool := range tools {
		add(tool.Tool.Name, tool.Tool.Description, tool.Role)
	}
	return infos, roles
}

// loadInstructions renders the embedded instructions template with the
// registered tools.
//
// Parameters:
//   - embed: Filesystem holding the instructions template
//   - tools: Tool definitions without config requirements
//   - toolsWithConfig: Tool definitions that read the configuration
//
// Returns:
//   - string: The instruction text sent to MCP clients on initialization
//   - error: If the template cannot be read, parsed or executed
func loadInstructions(embed templates.EmbedFS, tools []ToolDefinition, toolsWithConfig []ToolDefinitionWithConfig) (string, error) {
	templateBytes, err := embed.ReadFile(templates.InstructionsFile)
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	infos, roles := collectToolInfo(tools, toolsWithConfig)

	tmpl, err := template.New("instructions").Option("missingkey=error").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, instructionData{Tools: infos, ToolRoles: roles}); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}
	return buf.String(), nil
}
