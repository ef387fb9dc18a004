// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/goutils/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/goutils/src/version"
)

var appVersion = version.Version

// GetVersion returns the version passed to [Run], or the build version
// before Run is called.
func GetVersion() string {
	return appVersion
}

// NewDependencies assembles the tools, resources and instructions of the
// server for the given version.
//
// Returns:
//   - ServerDependencies: Everything except the configuration, which is
//     loaded when the server starts
//   - error: If the instructions template cannot be rendered
func NewDependencies(version string) (ServerDependencies, error) {
	tools, toolsWithConfig := createTools()

	instructions, err := loadInstructions(templates.MagicEmbed, tools, toolsWithConfig)
	if err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to load instructions: %w", err)
	}

	resources, resourcesWithEmbed := createResources(version, tools, toolsWithConfig)

	return ServerDependencies{
		Embed:              templates.MagicEmbed,
		Version:            version,
		Tools:              tools,
		ToolsWithConfig:    toolsWithConfig,
		Resources:          resources,
		ResourcesWithEmbed: resourcesWithEmbed,
		Instructions:       instructions,
	}, nil
}

// Run executes the root command with the process arguments.
//
// The server reads MCP messages from stdin and writes responses to stdout.
// SIGINT and SIGTERM cancel the server, which then returns nil.
//
// Parameters:
//   - version: Version reported to clients and by --version
//
// Returns:
//   - error: Configuration, template or transport errors
func Run(version string) error {
	appVersion = version

	deps, err := NewDependencies(version)
	if err != nil {
		return err
	}

	rootCmd, err := NewCLIFramework("", deps).BuildRootCommand()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}
