// ABOUTME: Argument coercion helpers for tool handlers
// ABOUTME: Model-provided arguments arrive as loosely typed JSON values

package tools

import (
	"encoding/json"
	"strconv"
	"strings"
)

// stringArg reads a string argument, falling back to def when the key is
// absent, empty, or not a string.
func stringArg(args map[string]any, key, def string) string {
	v, ok := args[key]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// intArg reads an integer argument. Models deliver numbers as float64,
// json.Number, or even quoted strings; anything unparsable falls back to def.
func intArg(args map[string]any, key string, def int) int {
	v, ok := args[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		if f, err := n.Float64(); err == nil {
			return int(f)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int(f)
		}
	}
	return def
}
