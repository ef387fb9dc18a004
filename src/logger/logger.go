// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/goutils/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/goutils/src/jsonobject"
)

// Logger defines the interface for logging operations.
//
// This interface supports both CLI and [MCP] server modes, allowing seamless
// switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints an informational message.
	Printf(format string, v ...any)
	// Println prints an informational message with a newline.
	Println(v ...any)
	// Errorf formats and prints an error message.
	Errorf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// Informational messages go to stdout and errors to stderr, both without timestamps.
type CLILogger struct {
	out *log.Logger
	err *log.Logger
}

// NewCLILogger creates a new CLI logger.
func NewCLILogger() *CLILogger {
	return &CLILogger{
		out: log.New(os.Stdout, "", 0),
		err: log.New(os.Stderr, "error: ", 0),
	}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.out.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.out.Println(v...) }

// Errorf prints an error message prefixed with "error: ".
func (c *CLILogger) Errorf(format string, v ...any) { c.err.Printf(format, v...) }

// SetOutput redirects both informational and error output to w.
func (c *CLILogger) SetOutput(w io.Writer) {
	c.out.SetOutput(w)
	c.err.SetOutput(w)
}

// entrySchema is the wire shape of an MCPLogger line.
var entrySchema = jsonobject.MustSchema("LogEntry",
	jsonobject.Field{Name: "level", Type: jsonobject.String},
	jsonobject.Field{Name: "message", Type: jsonobject.String},
)

// MCPLogger implements Logger for [MCP] server mode.
// MCP traffic owns stdout, so entries are written as JSON lines to a separate
// destination, or dropped entirely when silent.
//
// MCPLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type MCPLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewMCPLogger creates a logger writing JSON lines to writer. A nil writer
// discards output.
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &MCPLogger{writer: writer, silent: silent}
}

// Printf logs a formatted message at level "info".
func (m *MCPLogger) Printf(format string, v ...any) { m.write("info", fmt.Sprintf(format, v...)) }

// Println logs its operands at level "info".
func (m *MCPLogger) Println(v ...any) { m.write("info", fmt.Sprint(v...)) }

// Errorf logs a formatted message at level "error".
func (m *MCPLogger) Errorf(format string, v ...any) { m.write("error", fmt.Sprintf(format, v...)) }

// SetOutput sets the destination for subsequent entries. A nil writer
// discards output.
func (m *MCPLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}

func (m *MCPLogger) write(level, msg string) {
	if m.silent {
		return
	}

	entry := entrySchema.New().
		MustSet("level", level).
		MustSet("message", msg)

	data, err := jsonobject.Marshal(entry)
	if err != nil {
		return
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()
	buf.Write(data)
	buf.WriteByte('\n')

	m.mu.Lock()
	buf.WriteTo(m.writer)
	m.mu.Unlock()
}
