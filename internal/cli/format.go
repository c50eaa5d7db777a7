// Package cli provides the CLI presentation layer for the worklog
// application. It handles command-line output formatting and user
// interaction.
package cli

import (
	"strings"
	"time"
)

// FormatSavedAt formats a save timestamp for display in list output.
func FormatSavedAt(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// SummaryPreview returns the first line of a stored summary, truncated to
// max characters. A multi-line or truncated summary gets a "..." suffix.
func SummaryPreview(summary string, max int) string {
	line := summary
	truncated := false
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
		truncated = true
	}
	if len(line) > max {
		line = strings.TrimRight(line[:max], " ")
		truncated = true
	}
	if truncated {
		return line + "..."
	}
	return line
}

// IndentBlock indents every line of a multi-line block for nested display.
func IndentBlock(block, prefix string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
