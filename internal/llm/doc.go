// ABOUTME: Package documentation for llm
// ABOUTME: Gemini-backed implementation of the agent dispatcher

// Package llm implements agent.Dispatcher on top of the Gemini API. It owns
// the translation between the agent's history model and genai content, and
// between tool definitions and function declarations.
package llm
