// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/goutils/src/cli"
	"github.com/H0llyW00dzZ/goutils/src/logger"
)

const version = "1.3.3.7-testing"

const familySchema = `
root: Parent
types:
  Child:
    childName: string
    age: integer
  Parent:
    firstName: string
    children: [Child]
`

type result struct {
	stdout string
	stderr string
	log    string
	err    error
}

// run executes the command tree with args and stdin.
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr, logBuf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&logBuf)

	cmd := cli.NewRootCommand(version, log)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), log: logBuf.String(), err: err}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestVersionFlag(t *testing.T) {
	res := run(t, "", "--version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, version)
}

func TestUnknownCommand(t *testing.T) {
	res := run(t, "", "nope")
	assert.Error(t, res.err)
}
