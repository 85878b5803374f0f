// ABOUTME: Package documentation for store
// ABOUTME: SQLite-backed audit log of turns and tool calls

// Package store persists an audit trail of conversations: every user and
// model turn, and every tool invocation with its arguments and result.
// Recording is best-effort from the agent's point of view; a write failure
// is logged and never fails a turn.
package store
