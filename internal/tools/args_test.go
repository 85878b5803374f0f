// ABOUTME: Tests for argument coercion helpers
// ABOUTME: Covers float64, json.Number, quoted-string, and fallback behavior

package tools

import (
	"encoding/json"
	"testing"
)

func TestIntArg(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want int
	}{
		{"missing", map[string]any{}, 42},
		{"float64", map[string]any{"n": float64(7)}, 7},
		{"float64 fractional", map[string]any{"n": 7.9}, 7},
		{"int", map[string]any{"n": 5}, 5},
		{"int64", map[string]any{"n": int64(9)}, 9},
		{"json number", map[string]any{"n": json.Number("12")}, 12},
		{"json number float", map[string]any{"n": json.Number("12.5")}, 12},
		{"quoted int", map[string]any{"n": "30"}, 30},
		{"quoted float", map[string]any{"n": "30.9"}, 30},
		{"quoted with spaces", map[string]any{"n": " 15 "}, 15},
		{"garbage string", map[string]any{"n": "lots"}, 42},
		{"wrong type", map[string]any{"n": true}, 42},
		{"nil value", map[string]any{"n": nil}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intArg(tt.args, "n", 42); got != tt.want {
				t.Errorf("intArg(%v) = %d, want %d", tt.args["n"], got, tt.want)
			}
		})
	}
}

func TestStringArg(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing", map[string]any{}, "def"},
		{"present", map[string]any{"s": "value"}, "value"},
		{"empty", map[string]any{"s": ""}, "def"},
		{"whitespace only", map[string]any{"s": "   "}, "def"},
		{"wrong type", map[string]any{"s": 3.0}, "def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stringArg(tt.args, "s", "def"); got != tt.want {
				t.Errorf("stringArg(%v) = %q, want %q", tt.args["s"], got, tt.want)
			}
		})
	}
}
