// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// DefaultName is returned by [GetExecutableName] when os.Args carries no program name.
const DefaultName = "goutils"

// GetExecutableName returns the executable name without directory or .exe
// extension, e.g. "goutils" for both "/usr/local/bin/goutils" and
// "C:\bin\goutils.exe". Windows paths are handled on every platform.
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return DefaultName
	}
	return baseName(os.Args[0], DefaultName)
}

// baseName strips the directory and .exe suffix from path, returning fallback
// when nothing is left.
func baseName(path, fallback string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	path = strings.TrimSuffix(path, ".exe")
	if path == "" {
		return fallback
	}
	return path
}
