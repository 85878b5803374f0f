// ABOUTME: Gemini-backed dispatcher: converts history and tool defs to genai calls
// ABOUTME: Maps function-call responses back into agent decisions

package llm

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/2389/gitscout/internal/agent"
	"github.com/2389/gitscout/internal/tools"
)

// Gemini is an agent.Dispatcher backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGemini creates a dispatcher against the Gemini API.
func NewGemini(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Gemini{
		client: client,
		model:  model,
		logger: logger.With("component", "llm"),
	}, nil
}

// Decide sends the conversation and tool catalog to the model and returns
// its next move.
func (g *Gemini) Decide(ctx context.Context, history []agent.Message, defs []tools.Definition) (*agent.Decision, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: agent.SystemPrompt}},
		},
	}
	if len(defs) > 0 {
		cfg.Tools = []*genai.Tool{{FunctionDeclarations: toDeclarations(defs)}}
	}

	contents := toContents(history)

	g.logger.Debug("generating content", "model", g.model, "messages", len(contents), "tools", len(defs))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("generating content: %w", err)
	}

	if calls := resp.FunctionCalls(); len(calls) > 0 {
		decision := &agent.Decision{}
		for _, call := range calls {
			decision.ToolCalls = append(decision.ToolCalls, agent.ToolCall{
				Name: call.Name,
				Args: call.Args,
			})
		}
		g.logger.Info("model requested tools", "count", len(decision.ToolCalls))
		return decision, nil
	}

	return &agent.Decision{Answer: resp.Text()}, nil
}

// toContents converts agent history into genai content. Tool results travel
// back as function responses on a user-role content, per the API contract.
func toContents(history []agent.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case "model":
			parts := make([]*genai.Part, 0, 1+len(m.ToolCalls))
			if m.Content != "" {
				parts = append(parts, &genai.Part{Text: m.Content})
			}
			for _, call := range m.ToolCalls {
				parts = append(parts, &genai.Part{
					FunctionCall: &genai.FunctionCall{Name: call.Name, Args: call.Args},
				})
			}
			contents = append(contents, &genai.Content{Role: "model", Parts: parts})
		case "tool":
			contents = append(contents, &genai.Content{
				Role: "user",
				Parts: []*genai.Part{{
					FunctionResponse: &genai.FunctionResponse{
						Name:     m.ToolName,
						Response: map[string]any{"result": m.Content},
					},
				}},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  "user",
				Parts: []*genai.Part{{Text: m.Content}},
			})
		}
	}
	return contents
}

// toDeclarations converts tool definitions to genai function declarations.
func toDeclarations(defs []tools.Definition) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(defs))
	for _, def := range defs {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        def.Name,
			Description: def.Description,
			Parameters:  toSchema(def),
		})
	}
	return decls
}

// toSchema builds the object schema for a tool's parameters.
func toSchema(def tools.Definition) *genai.Schema {
	schema := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(def.Params)),
	}
	for _, p := range def.Params {
		schema.Properties[p.Name] = &genai.Schema{
			Type:        toType(p.Type),
			Description: p.Description,
		}
		if p.Required {
			schema.Required = append(schema.Required, p.Name)
		}
	}
	return schema
}

func toType(t tools.ParamType) genai.Type {
	switch t {
	case tools.TypeInteger:
		return genai.TypeInteger
	default:
		return genai.TypeString
	}
}
