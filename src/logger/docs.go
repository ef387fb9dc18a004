// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger defines the [Logger] used by the goutils commands.
//
// [CLILogger] writes plain lines for the goutils command: informational
// output to stdout and errors, prefixed with "error: ", to stderr.
// [MCPLogger] writes one {"level","message"} JSON object per line for the MCP
// server, where stdout is reserved for protocol traffic. It can be silenced
// from the server configuration.
package logger
