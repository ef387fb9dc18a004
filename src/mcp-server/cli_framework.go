// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/goutils/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/goutils/src/logger"
	"github.com/H0llyW00dzZ/goutils/src/mcp-server/templates"
)

// examplesMarker separates the Long description from the Examples in cli_help.md.
const examplesMarker = "## Examples"

// cliHelpData holds the values substituted into cli_help.md.
type cliHelpData struct {
	ExeName              string
	InstructionsFlagName string
	ConfigFlagName       string
	HelpFlagName         string
}

// CLIFramework wraps the MCP server in a Cobra root command.
//
// Running the command without arguments starts the stdio server. The
// --instructions flag prints the rendered client instructions instead, and
// --config selects the configuration file (falling back to [ConfigEnv]).
//
// Configuration is loaded when the server starts, so the --config flag
// can override the path given to [NewCLIFramework].
type CLIFramework struct {
	configFile         string
	embed              templates.EmbedFS
	version            string
	tools              []ToolDefinition
	toolsWithConfig    []ToolDefinitionWithConfig
	resources          []server.ServerResource
	resourcesWithEmbed []ServerResourceWithEmbed
	instructions       string
}

// NewCLIFramework creates a CLI framework from the server dependencies.
//
// Parameters:
//   - configFile: Default configuration file path; empty defers to [ConfigEnv]
//   - deps: Tools, resources, instructions and version for the server.
//     A nil Embed is replaced by [templates.MagicEmbed].
//
// Returns:
//   - *CLIFramework: Framework ready for [CLIFramework.BuildRootCommand]
func NewCLIFramework(configFile string, deps ServerDependencies) *CLIFramework {
	embed := deps.Embed
	if embed == nil {
		embed = templates.MagicEmbed
	}
	return &CLIFramework{
		configFile:         configFile,
		embed:              embed,
		version:            deps.Version,
		tools:              deps.Tools,
		toolsWithConfig:    deps.ToolsWithConfig,
		resources:          deps.Resources,
		resourcesWithEmbed: deps.ResourcesWithEmbed,
		instructions:       deps.Instructions,
	}
}

// BuildRootCommand creates the root command.
//
// Returns:
//   - *cobra.Command: The root command; stdio is taken from the command's
//     input and output so tests can replace them
//   - error: If the help template cannot be rendered
func (cf *CLIFramework) BuildRootCommand() (*cobra.Command, error) {
	exeName := posix.GetExecutableName()

	var showInstructions bool
	rootCmd := &cobra.Command{
		Use:           exeName,
		Short:         "Schema-typed JSON and certificate tools over the Model Context Protocol",
		Version:       cf.version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showInstructions {
				_, err := io.WriteString(cmd.OutOrStdout(), cf.instructions)
				return err
			}
			return cf.startMCPServer(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	rootCmd.Flags().BoolP("help", "h", false, "help for "+exeName)
	rootCmd.PersistentFlags().BoolVar(&showInstructions, "instructions", false, "print usage workflows for the server tools")
	rootCmd.PersistentFlags().StringVar(&cf.configFile, "config", cf.configFile, "path to MCP server configuration file")

	longDesc, examples, err := cf.renderHelp(cliHelpData{
		ExeName:              exeName,
		InstructionsFlagName: "--instructions",
		ConfigFlagName:       "--config",
		HelpFlagName:         "--help",
	})
	if err != nil {
		return nil, err
	}
	rootCmd.Long = longDesc
	rootCmd.Example = examples

	return rootCmd, nil
}

// renderHelp executes cli_help.md and splits it at the Examples heading.
func (cf *CLIFramework) renderHelp(data cliHelpData) (longDesc, examples string, err error) {
	templateBytes, err := cf.embed.ReadFile(templates.CLIHelpFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to load CLI help template: %w", err)
	}

	tmpl, err := template.New("cli_help").Parse(string(templateBytes))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse CLI help template: %w", err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", "", fmt.Errorf("failed to execute CLI help template: %w", err)
	}

	return splitHelp(result.String())
}

// splitHelp returns the text before the Examples heading line and the text
// after it, both trimmed.
func splitHelp(text string) (longDesc, examples string, err error) {
	before, after, found := strings.Cut(text, examplesMarker)
	if !found {
		return "", "", fmt.Errorf("CLI help template has invalid format - missing '%s' section", examplesMarker)
	}
	if i := strings.IndexByte(after, '\n'); i >= 0 {
		after = after[i+1:]
	} else {
		after = ""
	}
	return strings.TrimSpace(before), strings.TrimSpace(after), nil
}

// startMCPServer loads the configuration, builds the server and serves MCP
// on in and out until ctx is cancelled or in is exhausted.
//
// Returns:
//   - nil: On end of input or cancellation
//   - error: Configuration, build or transport errors
func (cf *CLIFramework) startMCPServer(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	config, err := loadConfig(cf.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewMCPLogger(errOut, !config.Log.Enabled)

	mcpServer, err := NewServerBuilder().
		WithConfig(config).
		WithEmbed(cf.embed).
		WithVersion(cf.version).
		WithTools(cf.tools...).
		WithToolsWithConfig(cf.toolsWithConfig...).
		WithResources(cf.resources...).
		WithEmbeddedResources(cf.resourcesWithEmbed...).
		WithInstructions(cf.instructions).
		WithLogger(log).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build MCP server: %w", err)
	}

	log.Printf("%s MCP server %s listening on stdio", serverName, cf.version)
	err = server.NewStdioServer(mcpServer).Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Printf("%s MCP server stopped", serverName)
	return nil
}
