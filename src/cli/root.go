// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/goutils/src/getkey"
	"github.com/H0llyW00dzZ/goutils/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/goutils/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/goutils/src/logger"
)

var (
	// ErrInvalidDocument indicates a JSON document that failed schema validation.
	ErrInvalidDocument = errors.New("cli: document does not match schema")

	// ErrPassphraseMismatch indicates two different answers to a passphrase prompt.
	ErrPassphraseMismatch = errors.New("cli: passphrases do not match")
)

// NewRootCommand builds the command tree. Progress messages go to log.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           posix.GetExecutableName(),
		Short:         "Schema-typed JSON, configuration and certificate utilities",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newJSONCommand(),
		newCSRCommand(log),
		newPFXCommand(),
		newConfigCommand(),
	)
	return root
}

// Execute runs the root command with os.Args, returning the first error.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// readInput reads path, or the command's input when path is empty or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return gc.ReadAll(cmd.InOrStdin())
	}
	return gc.ReadFile(path)
}

// writeOutput writes data to path, or to the command's output when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte, perm os.FileMode) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// promptPassphrase asks for a passphrase on the command's input. With confirm
// it asks twice and fails with [ErrPassphraseMismatch] on different answers.
func promptPassphrase(cmd *cobra.Command, prompt string, confirm bool) ([]byte, error) {
	r := getkey.NewReader(cmd.InOrStdin(), cmd.ErrOrStderr())

	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	first, err := r.GetPassword()
	if err != nil {
		return nil, err
	}
	if !confirm {
		return []byte(first), nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Verifying - "+prompt)
	second, err := r.GetPassword()
	if err != nil {
		return nil, err
	}
	if first != second {
		return nil, ErrPassphraseMismatch
	}
	return []byte(first), nil
}
