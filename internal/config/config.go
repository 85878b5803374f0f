// ABOUTME: Configuration loading for gitscout
// ABOUTME: Loads TOML config from XDG path with environment variable expansion

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultGeminiModel is used when gemini.model is not set.
const DefaultGeminiModel = "gemini-2.0-flash"

// Config represents the complete gitscout configuration.
type Config struct {
	Matrix   MatrixConfig   `toml:"matrix"`
	Gemini   GeminiConfig   `toml:"gemini"`
	GitHub   GitHubConfig   `toml:"github"`
	Bridge   BridgeConfig   `toml:"bridge"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
}

// MatrixConfig holds Matrix transport credentials.
type MatrixConfig struct {
	Homeserver  string `toml:"homeserver"`
	UserID      string `toml:"user_id"`
	AccessToken string `toml:"access_token"`
	RecoveryKey string `toml:"recovery_key"`
}

// GeminiConfig holds the LLM credentials and model selection.
type GeminiConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// GitHubConfig holds the optional GitHub API token.
// Without a token the bot still works, just at lower rate limits.
type GitHubConfig struct {
	Token string `toml:"token"`
}

// BridgeConfig holds message-handling options.
type BridgeConfig struct {
	AllowedRooms    []string `toml:"allowed_rooms"`
	TypingIndicator bool     `toml:"typing_indicator"`
}

// DatabaseConfig holds the audit database location.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// Path returns the config file path.
// Priority: GITSCOUT_CONFIG env var > XDG_CONFIG_HOME/gitscout/gitscout.toml > ~/.config/gitscout/gitscout.toml
func Path() string {
	if envPath := os.Getenv("GITSCOUT_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "gitscout.toml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "gitscout", "gitscout.toml")
}

// DataDir returns the gitscout data directory.
// Priority: XDG_DATA_HOME/gitscout > ~/.local/share/gitscout
func DataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "data" // fallback
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataDir, "gitscout")
}

// Load reads config from the given path, expanding environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables (${VAR} syntax)
	expanded := expandEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR} with environment variable values.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(varName)
	})
}

// applyDefaults fills in defaults for optional fields.
func (c *Config) applyDefaults() {
	if c.Gemini.Model == "" {
		c.Gemini.Model = DefaultGeminiModel
	}
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(DataDir(), "gitscout.db")
	}
}

// Validate checks that required config fields are present and valid.
func (c *Config) Validate() error {
	if c.Matrix.Homeserver == "" {
		return fmt.Errorf("matrix.homeserver is required")
	}
	if _, err := url.Parse(c.Matrix.Homeserver); err != nil {
		return fmt.Errorf("matrix.homeserver is not a valid URL: %w", err)
	}
	if c.Matrix.UserID == "" {
		return fmt.Errorf("matrix.user_id is required")
	}
	if c.Matrix.AccessToken == "" {
		return fmt.Errorf("matrix.access_token is required")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}
	return nil
}
