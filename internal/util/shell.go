// Package util provides small helpers shared across nvh packages.
package util

import "strings"

// ShellQuote wraps a string in single quotes, escaping any existing single quotes.
// The result is treated literally by sh, so display names and file paths with
// spaces survive being spliced into a command line.
func ShellQuote(s string) string {
	// Replace ' with '\'' (end quote, escaped quote, start quote)
	escaped := strings.ReplaceAll(s, "'", "'\\''")
	return "'" + escaped + "'"
}

// EnvAssign renders NAME=value with the value shell-quoted.
func EnvAssign(name, value string) string {
	return name + "=" + ShellQuote(value)
}
