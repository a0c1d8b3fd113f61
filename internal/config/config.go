// Package config loads the MCP server configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"os"

	"github.com/quarklabs/mcp-hackernews/internal/logger"
)

// Default endpoint and limit values.
const (
	defaultAPIBaseURL    = "https://hacker-news.firebaseio.com/v0"
	defaultSearchBaseURL = "https://hn.algolia.com/api/v1"

	defaultHTTPTimeoutSeconds = 30

	// Bounds enforced by the tool layer before calls reach the fetch core.
	defaultStoriesLimit = 10
	maxStoriesLimit     = 50
	defaultCommentDepth = 3
	maxCommentDepth     = 5
	defaultHitsPerPage  = 10
	maxHitsPerPage      = 50
)

// Config holds the MCP server configuration.
type Config struct {
	HackerNews HackerNewsConfig `yaml:"hackernews"`
	Limits     LimitsConfig     `yaml:"limits"`
	Logging    logger.Config    `yaml:"logging"`
}

// HackerNewsConfig holds the upstream endpoint settings.
type HackerNewsConfig struct {
	// APIBaseURL is the Firebase item/user/listing API base.
	APIBaseURL string `yaml:"api_base_url" env:"HN_API_BASE_URL"`
	// SearchBaseURL is the Algolia search API base.
	SearchBaseURL string `yaml:"search_base_url" env:"HN_SEARCH_BASE_URL"`
	// HTTPTimeoutSeconds is the transport-level timeout for every fetch.
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds" env:"HN_HTTP_TIMEOUT_SECONDS"`
}

// LimitsConfig bounds what the tools accept before calling the fetch core.
type LimitsConfig struct {
	DefaultStoriesLimit int `yaml:"default_stories_limit" env:"HN_DEFAULT_STORIES_LIMIT"`
	MaxStoriesLimit     int `yaml:"max_stories_limit" env:"HN_MAX_STORIES_LIMIT"`
	DefaultCommentDepth int `yaml:"default_comment_depth" env:"HN_DEFAULT_COMMENT_DEPTH"`
	MaxCommentDepth     int `yaml:"max_comment_depth" env:"HN_MAX_COMMENT_DEPTH"`
	DefaultHitsPerPage  int `yaml:"default_hits_per_page" env:"HN_DEFAULT_HITS_PER_PAGE"`
	MaxHitsPerPage      int `yaml:"max_hits_per_page" env:"HN_MAX_HITS_PER_PAGE"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return loadWithDefaults[Config](path, setDefaults)
}

// LoadOrDefault loads config from file, or returns defaults if the file does
// not exist. MCP hosts usually launch the server without a config file.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		cfg = NewDefault()
	}
	return cfg
}

// NewDefault creates a new config with all default values and env overrides
// applied.
func NewDefault() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg
}

// GetConfigPath returns the config path from the CONFIG_PATH env var or the
// given default.
func GetConfigPath(defaultPath string) string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return defaultPath
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	if cfg.HackerNews.APIBaseURL == "" {
		cfg.HackerNews.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.HackerNews.SearchBaseURL == "" {
		cfg.HackerNews.SearchBaseURL = defaultSearchBaseURL
	}
	if cfg.HackerNews.HTTPTimeoutSeconds <= 0 {
		cfg.HackerNews.HTTPTimeoutSeconds = defaultHTTPTimeoutSeconds
	}

	if cfg.Limits.DefaultStoriesLimit <= 0 {
		cfg.Limits.DefaultStoriesLimit = defaultStoriesLimit
	}
	if cfg.Limits.MaxStoriesLimit <= 0 {
		cfg.Limits.MaxStoriesLimit = maxStoriesLimit
	}
	if cfg.Limits.DefaultCommentDepth <= 0 {
		cfg.Limits.DefaultCommentDepth = defaultCommentDepth
	}
	if cfg.Limits.MaxCommentDepth <= 0 {
		cfg.Limits.MaxCommentDepth = maxCommentDepth
	}
	if cfg.Limits.DefaultHitsPerPage <= 0 {
		cfg.Limits.DefaultHitsPerPage = defaultHitsPerPage
	}
	if cfg.Limits.MaxHitsPerPage <= 0 {
		cfg.Limits.MaxHitsPerPage = maxHitsPerPage
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
