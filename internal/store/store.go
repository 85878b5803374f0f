// ABOUTME: Audit record types for conversation turns and tool calls
// ABOUTME: Defines the read surface used to review past sessions

package store

import (
	"context"
	"time"
)

// TurnRecord is one recorded conversation turn.
type TurnRecord struct {
	ID        string
	SessionID string
	Role      string // "user" or "model"
	Content   string
	CreatedAt time.Time
}

// ToolCallRecord is one recorded tool invocation within a session.
type ToolCallRecord struct {
	ID        string
	SessionID string
	Tool      string
	ArgsJSON  string
	Result    string
	CreatedAt time.Time
}

// Reader provides read access to the audit log.
type Reader interface {
	ListTurns(ctx context.Context, sessionID string, limit int) ([]TurnRecord, error)
	ListToolCalls(ctx context.Context, sessionID string, limit int) ([]ToolCallRecord, error)
}
