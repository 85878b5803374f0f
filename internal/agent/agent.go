// ABOUTME: The agent turn loop: dispatch, execute tools, repeat until an answer
// ABOUTME: Tool failures flow back into the conversation as text, never as turn errors

package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/2389/gitscout/internal/tools"
)

// maxToolRounds bounds how many dispatch rounds one turn may take before
// the agent gives up with a fallback answer.
const maxToolRounds = 10

// roundCapAnswer is returned when the model keeps requesting tools past
// the round cap.
const roundCapAnswer = "Вибачте, мені не вдалося завершити аналіз за розумну кількість кроків. Будь ласка, спробуйте переформулювати запит."

// AuditLog records turns and tool calls for later review. Implementations
// must tolerate concurrent calls; a nil AuditLog disables recording.
type AuditLog interface {
	RecordTurn(ctx context.Context, sessionID, role, content string) error
	RecordToolCall(ctx context.Context, sessionID, tool, argsJSON, result string) error
}

// Agent runs conversation turns against a dispatcher and a tool registry.
type Agent struct {
	dispatcher Dispatcher
	registry   *tools.Registry
	audit      AuditLog
	logger     *slog.Logger
}

// New creates an agent. audit may be nil.
func New(dispatcher Dispatcher, registry *tools.Registry, audit AuditLog, logger *slog.Logger) *Agent {
	return &Agent{
		dispatcher: dispatcher,
		registry:   registry,
		audit:      audit,
		logger:     logger.With("component", "agent"),
	}
}

// Turn processes one user message within a session and returns the final
// answer text. The user message and the answer are appended to the session;
// intermediate tool traffic is appended too so follow-up turns see it.
// An error means the model itself failed and nothing useful was produced.
func (a *Agent) Turn(ctx context.Context, sess *Session, userText string) (string, error) {
	sess.Append(Message{Role: "user", Content: userText})
	a.recordTurn(ctx, sess.ID(), "user", userText)

	defs := a.registry.Definitions()

	for round := 0; round < maxToolRounds; round++ {
		decision, err := a.dispatcher.Decide(ctx, sess.History(), defs)
		if err != nil {
			a.logger.Error("dispatch failed", "session", sess.ID(), "round", round+1, "error", err)
			return "", fmt.Errorf("dispatching turn: %w", err)
		}

		if len(decision.ToolCalls) == 0 {
			sess.Append(Message{Role: "model", Content: decision.Answer})
			a.recordTurn(ctx, sess.ID(), "model", decision.Answer)
			a.logger.Info("turn completed", "session", sess.ID(), "rounds", round+1)
			return decision.Answer, nil
		}

		sess.Append(Message{Role: "model", ToolCalls: decision.ToolCalls})

		for _, call := range decision.ToolCalls {
			a.logger.Info("executing tool", "session", sess.ID(), "tool", call.Name)

			result, err := a.registry.Execute(ctx, call.Name, call.Args)
			if err != nil {
				// Unknown tool name from the model. Report it back as text
				// so the model can correct itself.
				result = fmt.Sprintf("Error: %v", err)
				a.logger.Warn("tool execution failed", "tool", call.Name, "error", err)
			}

			sess.Append(Message{Role: "tool", ToolName: call.Name, Content: result})
			a.recordToolCall(ctx, sess.ID(), call.Name, call.Args, result)
		}
	}

	a.logger.Warn("tool round cap reached", "session", sess.ID(), "cap", maxToolRounds)
	sess.Append(Message{Role: "model", Content: roundCapAnswer})
	a.recordTurn(ctx, sess.ID(), "model", roundCapAnswer)
	return roundCapAnswer, nil
}

func (a *Agent) recordTurn(ctx context.Context, sessionID, role, content string) {
	if a.audit == nil {
		return
	}
	if err := a.audit.RecordTurn(ctx, sessionID, role, content); err != nil {
		a.logger.Warn("failed to record turn", "session", sessionID, "error", err)
	}
}

func (a *Agent) recordToolCall(ctx context.Context, sessionID, tool string, args map[string]any, result string) {
	if a.audit == nil {
		return
	}
	argsJSON, err := json.Marshal(args)
	if err != nil {
		argsJSON = []byte("{}")
	}
	if err := a.audit.RecordToolCall(ctx, sessionID, tool, string(argsJSON), result); err != nil {
		a.logger.Warn("failed to record tool call", "session", sessionID, "tool", tool, "error", err)
	}
}
