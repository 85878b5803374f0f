// ABOUTME: Package documentation for agent
// ABOUTME: Describes the turn loop and the dispatcher seam

// Package agent runs conversation turns: it sends the history and the tool
// catalog to a Dispatcher, executes whatever tool calls come back, folds the
// results into the history, and repeats until the dispatcher produces a
// final answer or the round cap is hit.
//
// The Dispatcher seam keeps the loop independent of any model API, so the
// loop is tested with a scripted dispatcher and the production wiring plugs
// in the Gemini-backed one from the llm package.
package agent
