// ABOUTME: The dispatcher abstraction between the agent loop and the model
// ABOUTME: A dispatcher turns history plus tool definitions into the model's next move

package agent

import (
	"context"

	"github.com/2389/gitscout/internal/tools"
)

// ToolCall is one tool invocation requested by the model.
type ToolCall struct {
	Name string
	Args map[string]any
}

// Decision is the model's next move: either tool calls to execute, or a
// final answer. When ToolCalls is non-empty the Answer is ignored.
type Decision struct {
	ToolCalls []ToolCall
	Answer    string
}

// Dispatcher decides the next move given the conversation so far and the
// tools on offer. Implementations wrap a concrete model API; tests use a
// scripted stub.
type Dispatcher interface {
	Decide(ctx context.Context, history []Message, defs []tools.Definition) (*Decision, error)
}
