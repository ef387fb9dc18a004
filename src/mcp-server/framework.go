// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/goutils/src/logger"
	"github.com/H0llyW00dzZ/goutils/src/mcp-server/templates"
)

// serverName is reported to clients during initialization.
const serverName = "goutils"

// ToolHandler handles a tool call that needs no server state.
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithConfig handles a tool call that reads the server [Config].
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error)

// ResourceHandler handles a resource read.
type ResourceHandler = func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

// ToolDefinition pairs a tool with its handler.
//
// Role is the stable name the instructions template uses to refer to the
// tool, so tools can be renamed without touching the template.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ToolDefinitionWithConfig pairs a tool with a handler that reads the server [Config].
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
	Role    string
}

// ServerResourceWithEmbed is a resource whose handler reads the embedded templates.
type ServerResourceWithEmbed struct {
	Resource mcp.Resource
	Handler  func(ctx context.Context, request mcp.ReadResourceRequest, embed templates.EmbedFS) ([]mcp.ResourceContents, error)
}

// ServerDependencies holds everything needed to build the MCP server.
//
// Fields:
//   - Config: Server configuration passed to config-aware tools
//   - Embed: Embedded templates for resources and instructions
//   - Version: Server version reported to clients
//   - Tools: Tools that need no configuration
//   - ToolsWithConfig: Tools that read the configuration
//   - Resources: Static and dynamic resources
//   - ResourcesWithEmbed: Resources that read the embedded templates
//   - Instructions: Text sent to clients during initialization
//   - Logger: Destination for tool call logging; nil disables it
type ServerDependencies struct {
	Config             *Config
	Embed              templates.EmbedFS
	Version            string
	Tools              []ToolDefinition
	ToolsWithConfig    []ToolDefinitionWithConfig
	Resources          []server.ServerResource
	ResourcesWithEmbed []ServerResourceWithEmbed
	Instructions       string
	Logger             logger.Logger
}

// ServerBuilder assembles an MCP server from its dependencies.
//
// Example usage:
//
//	s, err := NewServerBuilder().
//		WithConfig(config).
//		WithVersion(version.Version).
//		WithTools(tools...).
//		WithToolsWithConfig(toolsWithConfig...).
//		Build()
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder returns an empty builder.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration passed to config-aware tools.
func (b *ServerBuilder) WithConfig(config *Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithEmbed sets the embedded filesystem used by resources.
func (b *ServerBuilder) WithEmbed(embed templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = embed
	return b
}

// WithVersion sets the version reported to clients.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithTools adds tools that need no configuration.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithConfig adds tools that read the configuration.
func (b *ServerBuilder) WithToolsWithConfig(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, tools...)
	return b
}

// WithResources adds resources.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithEmbeddedResources adds resources that read the embedded templates.
func (b *ServerBuilder) WithEmbeddedResources(resources ...ServerResourceWithEmbed) *ServerBuilder {
	b.deps.ResourcesWithEmbed = append(b.deps.ResourcesWithEmbed, resources...)
	return b
}

// WithInstructions sets the instructions sent during initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithLogger logs every tool call to l.
func (b *ServerBuilder) WithLogger(l logger.Logger) *ServerBuilder {
	b.deps.Logger = l
	return b
}

// WithDependencies replaces all dependencies at once.
func (b *ServerBuilder) WithDependencies(deps ServerDependencies) *ServerBuilder {
	b.deps = deps
	return b
}

// Build creates the MCP server.
//
// A nil configuration is replaced by the defaults and a nil embed by
// [templates.MagicEmbed].
//
// Returns:
//   - *server.MCPServer: The server with all tools and resources registered
//   - error: Always nil; kept for future validation
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	config := b.deps.Config
	if config == nil {
		config = defaultConfig()
	}
	embed := b.deps.Embed
	if embed == nil {
		embed = templates.MagicEmbed
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}
	s := server.NewMCPServer(serverName, b.deps.Version, opts...)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, b.logged(tool.Tool.Name, tool.Handler))
	}

	for _, tool := range b.deps.ToolsWithConfig {
		handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return tool.Handler(ctx, request, config)
		}
		s.AddTool(tool.Tool, b.logged(tool.Tool.Name, handler))
	}

	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	for _, resource := range b.deps.ResourcesWithEmbed {
		handler := func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return resource.Handler(ctx, request, embed)
		}
		s.AddResource(resource.Resource, handler)
	}

	return s, nil
}

// logged wraps handler so each call and its failure are logged.
func (b *ServerBuilder) logged(name string, handler ToolHandler) ToolHandler {
	log := b.deps.Logger
	if log == nil {
		return handler
	}
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log.Printf("tool call: %s", name)
		result, err := handler(ctx, request)
		switch {
		case err != nil:
			log.Errorf("tool %s failed: %v", name, err)
		case result != nil && result.IsError:
			log.Errorf("tool %s returned an error result", name)
		}
		return result, err
	}
}
