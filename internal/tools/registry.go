// ABOUTME: Thread-safe registry for in-process tools exposed to the model
// ABOUTME: Manages registration, collision detection, lookup, and execution

package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// ErrToolCollision indicates a tool name is already registered.
var ErrToolCollision = errors.New("tool name collision")

// ErrToolNotFound indicates the named tool is not registered.
var ErrToolNotFound = errors.New("tool not found")

// ParamType is the declared type of a tool parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
)

// Param describes one parameter of a tool.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
}

// Definition is the model-facing description of a tool.
type Definition struct {
	Name        string
	Description string
	Params      []Param
}

// Handler executes a tool call. Handlers never fail: any problem is
// reported inside the returned text so the model can relay it.
type Handler func(ctx context.Context, args map[string]any) string

// Tool pairs a definition with its handler.
type Tool struct {
	Definition Definition
	Handler    Handler
}

// Registry holds the tools offered to the model during a turn.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]*Tool
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		tools:  make(map[string]*Tool),
		logger: logger.With("component", "tools"),
	}
}

// Register adds tools to the registry.
// Returns ErrToolCollision if any name is already taken.
func (r *Registry) Register(tools ...*Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(tools))
	for _, tool := range tools {
		name := tool.Definition.Name
		if _, exists := r.tools[name]; exists || seen[name] {
			return fmt.Errorf("%w: %q", ErrToolCollision, name)
		}
		seen[name] = true
	}
	for _, tool := range tools {
		r.tools[tool.Definition.Name] = tool
	}

	r.logger.Info("tools registered", "count", len(tools), "total", len(r.tools))
	return nil
}

// Definitions returns all tool definitions, sorted by name so the model
// sees a stable ordering across turns.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.tools))
	for _, tool := range r.tools {
		defs = append(defs, tool.Definition)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Execute runs the named tool with the given arguments.
// Returns ErrToolNotFound for unknown names; handler output is otherwise
// returned verbatim.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (string, error) {
	r.mu.RLock()
	tool, exists := r.tools[name]
	r.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}

	r.logger.Debug("executing tool", "tool", name)
	return tool.Handler(ctx, args), nil
}
