// Package platform holds the host-dependent naming and quoting rules for
// build artifacts and command lines.
package platform

import (
	"path/filepath"
	"runtime"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Platform selects the conventions of an operating system. Values are
// comparable; the host's conventions come from Host.
type Platform struct {
	GOOS string
}

// Host returns the platform sail is running on.
func Host() Platform {
	return Platform{GOOS: runtime.GOOS}
}

func (p Platform) windows() bool {
	return p.GOOS == "windows"
}

// ExeSuffix returns the executable filename suffix: ".exe" on Windows,
// empty elsewhere.
func (p Platform) ExeSuffix() string {
	if p.windows() {
		return ".exe"
	}
	return ""
}

// ExecutablePath returns the path of the executable artifact named name
// inside dir. It is a pure path computation; dir need not exist.
func (p Platform) ExecutablePath(dir, name string) string {
	return filepath.Join(dir, name+p.ExeSuffix())
}

// QuotePath returns path in a form safe to paste into a shell command line.
// On Windows the path is wrapped in double quotes; elsewhere it follows
// POSIX shell quoting rules.
func (p Platform) QuotePath(path string) string {
	if p.windows() {
		return `"` + path + `"`
	}
	quoted, err := syntax.Quote(path, syntax.LangPOSIX)
	if err != nil {
		// Only strings containing NUL bytes are unquotable.
		return path
	}
	return quoted
}

// QuoteCommand renders a command vector as a single shell-style line, for
// echoing to logs. Processes are always started from the vector itself.
func (p Platform) QuoteCommand(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, p.QuotePath(name))
	for _, a := range args {
		parts = append(parts, p.QuotePath(a))
	}
	return strings.Join(parts, " ")
}
