package engine

import (
	"strconv"
	"strings"
)

// parseIndex parses a non-negative integer such as a GPU or fan index.
// One leading '+' is allowed; '-' is not, so "-0" fails.
func parseIndex(s string) (int, bool) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, strconv.IntSize-1)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// parseSigned parses a 32-bit signed integer such as a clock offset.
func parseSigned(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// parseBool accepts exactly "true" or "false".
func parseBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
