// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/goutils/src/logger"
)

// safeBuffer serializes writes for tests that share a buffer between goroutines.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *safeBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *safeBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func decodeLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T, log *logger.CLILogger, buf *bytes.Buffer)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T, log *logger.CLILogger, buf *bytes.Buffer) {
				log.Printf("test message: %s", "hello")
				assert.Equal(t, "test message: hello\n", buf.String())
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T, log *logger.CLILogger, buf *bytes.Buffer) {
				log.Println("test", "message")
				assert.Equal(t, "test message\n", buf.String())
			},
		},
		{
			name: "Errorf",
			testFunc: func(t *testing.T, log *logger.CLILogger, buf *bytes.Buffer) {
				log.Errorf("failed: %v", os.ErrNotExist)
				assert.Equal(t, "error: failed: file does not exist\n", buf.String())
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T, log *logger.CLILogger, buf *bytes.Buffer) {
				log.Println("first")
				var other bytes.Buffer
				log.SetOutput(&other)
				log.Println("second")

				assert.Equal(t, "first\n", buf.String())
				assert.Equal(t, "second\n", other.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.NewCLILogger()
			log.SetOutput(&buf)
			tt.testFunc(t, log, &buf)
		})
	}
}

func TestMCPLogger(t *testing.T) {
	tests := []struct {
		name     string
		log      func(l logger.Logger)
		wantLvl  string
		wantMsg  string
		wantLine string
	}{
		{
			name:     "Printf",
			log:      func(l logger.Logger) { l.Printf("test message: %s", "hello") },
			wantLvl:  "info",
			wantMsg:  "test message: hello",
			wantLine: `{"level":"info","message":"test message: hello"}`,
		},
		{
			name:    "Println",
			log:     func(l logger.Logger) { l.Println("count", 3) },
			wantLvl: "info",
			wantMsg: "count3",
		},
		{
			name:    "Errorf",
			log:     func(l logger.Logger) { l.Errorf("bad %s", "input") },
			wantLvl: "error",
			wantMsg: "bad input",
		},
		{
			name:    "Escaping",
			log:     func(l logger.Logger) { l.Printf("%s", "quote\" newline\n tab\t <html>") },
			wantLvl: "info",
			wantMsg: "quote\" newline\n tab\t <html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(logger.NewMCPLogger(&buf, false))

			entries := decodeLines(t, buf.String())
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLvl, entries[0]["level"])
			assert.Equal(t, tt.wantMsg, entries[0]["message"])
			if tt.wantLine != "" {
				assert.Equal(t, tt.wantLine+"\n", buf.String(), "level precedes message")
			}
		})
	}
}

func TestMCPLoggerSilent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewMCPLogger(&buf, true)
	log.Printf("test message: %s", "hello")
	log.Println("another message")
	log.Errorf("an error")
	assert.Empty(t, buf.String())
}

func TestMCPLoggerSetOutput(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	log := logger.NewMCPLogger(&buf1, false)

	log.Println("first")
	log.SetOutput(&buf2)
	log.Println("second")
	log.SetOutput(nil)
	log.Println("dropped")

	assert.Contains(t, buf1.String(), "first")
	assert.NotContains(t, buf1.String(), "second")
	assert.Contains(t, buf2.String(), "second")
	assert.NotContains(t, buf2.String(), "dropped")

	assert.NotPanics(t, func() { logger.NewMCPLogger(nil, false).Printf("discarded") })
}

func TestMCPLoggerConcurrent(t *testing.T) {
	const goroutines = 50
	const messages = 100

	var buf safeBuffer
	log := logger.NewMCPLogger(&buf, false)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Go(func() {
			for j := range messages {
				if j%2 == 0 {
					log.Printf("goroutine %d message %d", i, j)
				} else {
					log.Errorf("goroutine %d error %d", i, j)
				}
			}
		})
	}
	wg.Wait()

	entries := decodeLines(t, buf.String())
	assert.Len(t, entries, goroutines*messages, "every line must be a complete JSON entry")

	var errs int
	for _, e := range entries {
		if e["level"] == "error" {
			errs++
		}
	}
	assert.Equal(t, goroutines*messages/2, errs)
}

func TestMCPLoggerWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.log")
	f, err := os.Create(path)
	require.NoError(t, err)

	log := logger.NewMCPLogger(f, false)
	log.Printf("server started on %s", "stdio")
	log.Errorf("tool %s failed", "json_validate")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entries := decodeLines(t, string(data))
	require.Len(t, entries, 2)
	assert.Equal(t, "server started on stdio", entries[0]["message"])
	assert.Equal(t, "error", entries[1]["level"])
}
