// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package getkey_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/goutils/src/getkey"
)

func TestGetKey(t *testing.T) {
	r := getkey.NewReader(strings.NewReader("ab\x1b"), nil)
	assert.False(t, r.IsTerminal())

	for _, want := range []byte{'a', 'b', 0x1b} {
		got, err := r.GetKey()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := r.GetKey()
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetStr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantEcho string
		wantErr  error
	}{
		{
			name:     "Carriage Return",
			input:    "hello\r",
			want:     "hello",
			wantEcho: "hello\n",
		},
		{
			name:     "Line Feed",
			input:    "hello\n",
			want:     "hello",
			wantEcho: "hello\n",
		},
		{
			name:     "CRLF Consumed Together",
			input:    "one\r\ntwo\r",
			want:     "one",
			wantEcho: "one\n",
		},
		{
			name:     "Backspace",
			input:    "helo\x7flo\r",
			want:     "hello",
			wantEcho: "helo\b \blo\n",
		},
		{
			name:     "Ctrl-H On Empty Line",
			input:    "\x08x\r",
			want:     "x",
			wantEcho: "x\n",
		},
		{
			name:     "Backspace Removes Whole Rune",
			input:    "caf\u00e9\x7fe\r",
			want:     "cafe",
			wantEcho: "caf\u00e9\b \be\n",
		},
		{
			name:     "NFC Normalization",
			input:    "cafe\u0301\r",
			want:     "caf\u00e9",
			wantEcho: "cafe\u0301\n",
		},
		{
			name:     "Ctrl-C",
			input:    "abc\x03",
			wantEcho: "abc\n",
			wantErr:  getkey.ErrInterrupted,
		},
		{
			name:     "EOF After Text",
			input:    "partial",
			want:     "partial",
			wantEcho: "partial\n",
		},
		{
			name:     "Ctrl-D After Text",
			input:    "partial\x04rest",
			want:     "partial",
			wantEcho: "partial\n",
		},
		{
			name:    "EOF On Empty Line",
			input:   "",
			wantErr: io.EOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var echo bytes.Buffer
			r := getkey.NewReader(strings.NewReader(tt.input), &echo)

			got, err := r.GetStr()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantEcho, echo.String())
		})
	}
}

func TestGetStrSequentialLines(t *testing.T) {
	r := getkey.NewReader(strings.NewReader("first\r\nsecond\r\n"), nil)

	first, err := r.GetStr()
	require.NoError(t, err)
	second, err := r.GetStr()
	require.NoError(t, err)

	assert.Equal(t, "first", first)
	assert.Equal(t, "second", second)

	_, err = r.GetStr()
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	var echo bytes.Buffer
	r := getkey.NewReader(strings.NewReader("s3cr\x7fret\r"), &echo)

	got, err := r.GetPassword()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Equal(t, "\n", echo.String(), "password must not be echoed")
}

func TestPrompt(t *testing.T) {
	var echo bytes.Buffer
	r := getkey.NewReader(strings.NewReader("  yes \r"), &echo)

	got, err := r.Prompt("Continue? ")
	require.NoError(t, err)
	assert.Equal(t, "yes", got)
	assert.Equal(t, "Continue?   yes \n", echo.String())
}
