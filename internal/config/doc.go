// ABOUTME: Package documentation for config
// ABOUTME: Explains configuration sources and precedence

// Package config loads the gitscout TOML configuration.
//
// Config is read from a single TOML file resolved via GITSCOUT_CONFIG or the
// XDG config directory, with ${VAR} references expanded from the environment
// before parsing. Matrix credentials and the Gemini API key are required; the
// GitHub token is optional and only affects API rate limits.
package config
