// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates embeds the markdown served by the MCP server: the
// client instructions, the schema format reference and the command help.
//
// Files are read through [MagicEmbed]:
//
//	content, err := templates.MagicEmbed.ReadFile("schema_format.md")
//	if err != nil {
//		return fmt.Errorf("failed to read schema format: %w", err)
//	}
package templates
