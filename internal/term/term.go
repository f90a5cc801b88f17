// Package term prints user-facing status lines.
package term

import "github.com/mitchellh/colorstring"

// Task prints a top-level progress line.
func Task(msg string) {
	colorstring.Printf("[green][bold]%s[reset]\n", msg)
}

// Info prints a plain status line.
func Info(msg string) {
	colorstring.Printf("%s\n", msg)
}

// Warn prints a warning line.
func Warn(msg string) {
	colorstring.Printf("[yellow]%s[reset]\n", msg)
}

// Error prints a failure line.
func Error(msg string) {
	colorstring.Printf("[red]%s[reset]\n", msg)
}
