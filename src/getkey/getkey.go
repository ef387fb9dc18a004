// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package getkey

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"
)

// ErrInterrupted is returned when Ctrl-C is read while editing a line.
var ErrInterrupted = errors.New("getkey: interrupted")

const (
	keyInterrupt = 0x03
	keyEOT       = 0x04
	keyBackspace = 0x08
	keyDelete    = 0x7f
)

// fdReader is implemented by *os.File.
type fdReader interface {
	io.Reader
	Fd() uintptr
}

// Reader reads keys from an input and echoes line edits to a writer.
// A Reader is not safe for concurrent use.
type Reader struct {
	in   *bufio.Reader
	echo io.Writer
	fd   int
	tty  bool
}

// NewReader returns a Reader over in that echoes to echo. A nil echo discards
// output. Raw mode is used only when in is a terminal.
func NewReader(in io.Reader, echo io.Writer) *Reader {
	if echo == nil {
		echo = io.Discard
	}
	r := &Reader{in: bufio.NewReader(in), echo: echo, fd: -1}
	if f, ok := in.(fdReader); ok && term.IsTerminal(int(f.Fd())) {
		r.fd = int(f.Fd())
		r.tty = true
	}
	return r
}

// IsTerminal reports whether the input is a terminal.
func (r *Reader) IsTerminal() bool { return r.tty }

// raw puts a terminal input into raw mode and returns the function that
// restores it.
func (r *Reader) raw() (func(), error) {
	if !r.tty {
		return func() {}, nil
	}
	state, err := term.MakeRaw(r.fd)
	if err != nil {
		return nil, fmt.Errorf("getkey: failed to enter raw mode: %w", err)
	}
	return func() { term.Restore(r.fd, state) }, nil
}

// newline is the line ending to echo; raw mode disables output translation.
func (r *Reader) newline() string {
	if r.tty {
		return "\r\n"
	}
	return "\n"
}

// GetKey waits for a single keypress and returns its first byte. Keys that
// send escape sequences, such as arrows, return 0x1b and leave the rest of the
// sequence for the next call.
func (r *Reader) GetKey() (byte, error) {
	restore, err := r.raw()
	if err != nil {
		return 0, err
	}
	defer restore()

	return r.in.ReadByte()
}

// GetStr reads characters until Enter is pressed, echoing each one, and
// returns the text in Unicode NFC form without the line ending.
//
// Backspace removes the last character. Ctrl-C aborts with [ErrInterrupted].
// Ctrl-D or end of input finishes the line; if nothing was typed, [io.EOF] is
// returned instead.
func (r *Reader) GetStr() (string, error) {
	return r.readLine(true)
}

// GetPassword is like [Reader.GetStr] but does not echo the typed characters.
func (r *Reader) GetPassword() (string, error) {
	return r.readLine(false)
}

func (r *Reader) readLine(echo bool) (string, error) {
	restore, err := r.raw()
	if err != nil {
		return "", err
	}
	defer restore()

	var text []rune
	for {
		ch, _, err := r.in.ReadRune()
		if errors.Is(err, io.EOF) || (err == nil && ch == keyEOT) {
			if len(text) == 0 {
				return "", io.EOF
			}
			break
		}
		if err != nil {
			return "", err
		}

		switch ch {
		case '\r', '\n':
			if ch == '\r' {
				r.skipLF()
			}
			io.WriteString(r.echo, r.newline())
			return norm.NFC.String(string(text)), nil
		case keyInterrupt:
			io.WriteString(r.echo, r.newline())
			return "", ErrInterrupted
		case keyBackspace, keyDelete:
			if len(text) > 0 {
				text = text[:len(text)-1]
				if echo {
					io.WriteString(r.echo, "\b \b")
				}
			}
			continue
		case utf8.RuneError:
			continue
		}

		text = append(text, ch)
		if echo {
			io.WriteString(r.echo, string(ch))
		}
	}

	io.WriteString(r.echo, r.newline())
	return norm.NFC.String(string(text)), nil
}

// skipLF consumes the '\n' of a "\r\n" line ending when it is already buffered.
func (r *Reader) skipLF() {
	if r.in.Buffered() == 0 {
		return
	}
	if b, err := r.in.Peek(1); err == nil && b[0] == '\n' {
		r.in.ReadByte()
	}
}

// Prompt writes prompt to the echo writer and reads a line with [Reader.GetStr].
func (r *Reader) Prompt(prompt string) (string, error) {
	io.WriteString(r.echo, prompt)
	s, err := r.GetStr()
	return strings.TrimSpace(s), err
}

var std = NewReader(os.Stdin, os.Stdout)

// GetKey reads a single keypress from standard input.
func GetKey() (byte, error) { return std.GetKey() }

// GetStr reads a line from standard input, echoing to standard output.
func GetStr() (string, error) { return std.GetStr() }

// GetPassword reads a line from standard input without echo.
func GetPassword() (string, error) { return std.GetPassword() }
