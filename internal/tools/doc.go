// ABOUTME: Package documentation for tools
// ABOUTME: Describes the in-process tool registry and its call contract

// Package tools defines the registry of in-process tools offered to the
// model and the GitHub investigation pack.
//
// Arguments arrive as loosely typed JSON maps straight from the model, so
// handlers coerce them defensively: numbers may be float64 or quoted
// strings, and anything missing or malformed falls back to a documented
// default rather than failing the call.
package tools
