// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for goutils.
// It implements a Cobra-based CLI with subcommands to normalize and validate
// JSON documents against schema documents, generate certificate signing
// requests, inspect PKCS#12 bundles and read configuration files.
// Output goes to the command's writers so the commands can be driven from tests.
package cli
