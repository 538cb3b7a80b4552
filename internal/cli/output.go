// Package cli provides terminal-aware output helpers for the promptstore
// command.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// colorEnabled tracks whether color output is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

func init() {
	// Disable colors if stdout is not a terminal
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string {
	if !colorEnabled {
		return s
	}
	return colorGreen + s + colorReset
}

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string {
	if !colorEnabled {
		return s
	}
	return colorRed + s + colorReset
}

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string {
	if !colorEnabled {
		return s
	}
	return colorGray + s + colorReset
}

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows      [][]string
	colWidths []int
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		if len(col) > t.colWidths[i] {
			t.colWidths[i] = len(col)
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
// The last column of each row is never padded.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		var parts []string
		for i, col := range row {
			if i < len(t.colWidths)-1 {
				parts = append(parts, col+strings.Repeat(" ", t.colWidths[i]-len(col)))
			} else {
				parts = append(parts, col)
			}
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
