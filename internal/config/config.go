package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// DefaultEndpoint is the chat proxy the suggestion client posts to.
const DefaultEndpoint = "http://localhost:8787/api/chat"

// DefaultAPIKeyEnv is the environment variable read for the endpoint key.
const DefaultAPIKeyEnv = "CANVAS_API_KEY"

// Config holds application configuration.
type Config struct {
	// Endpoint is the URL of the remote chat endpoint. The endpoint owns
	// the model; Canvas only sends {system, messages} and reads back
	// {content: [{text}]}.
	Endpoint string `json:"endpoint"`

	// APIKeyEnv names the environment variable holding the endpoint key.
	// An empty value in the environment means requests go out unsigned.
	APIKeyEnv string `json:"api_key_env,omitempty"`

	// RequestTimeoutSecs bounds a single suggestion request. 0 means no
	// client-side timeout; the transport's own limits govern.
	RequestTimeoutSecs int `json:"request_timeout_secs,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// 0 means use sql.DB default. Only set if you experience contention.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:  DefaultEndpoint,
		APIKeyEnv: DefaultAPIKeyEnv,
	}
}

// APIKey resolves the endpoint key from the configured environment variable.
func (c *Config) APIKey() string {
	env := c.APIKeyEnv
	if env == "" {
		env = DefaultAPIKeyEnv
	}
	return os.Getenv(env)
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.canvas.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs. Overlay values take precedence
// for non-zero scalars.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.Endpoint = overlay.Endpoint
	if result.Endpoint == "" {
		result.Endpoint = base.Endpoint
	}

	result.APIKeyEnv = overlay.APIKeyEnv
	if result.APIKeyEnv == "" {
		result.APIKeyEnv = base.APIKeyEnv
	}

	result.RequestTimeoutSecs = overlay.RequestTimeoutSecs
	if result.RequestTimeoutSecs == 0 {
		result.RequestTimeoutSecs = base.RequestTimeoutSecs
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	return result
}
