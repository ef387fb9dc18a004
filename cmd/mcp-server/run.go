// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Command mcp-server serves the goutils JSON and certificate tools over the
// Model Context Protocol on stdio.
package main

import (
	"os"

	"github.com/H0llyW00dzZ/goutils/src/logger"
	mcpserver "github.com/H0llyW00dzZ/goutils/src/mcp-server"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = mcpserver.GetVersion()
	}
}

func main() {
	if err := mcpserver.Run(version); err != nil {
		logger.NewCLILogger().Errorf("server: %v", err)
		os.Exit(1)
	}
}
