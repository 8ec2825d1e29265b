package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the complete stelint configuration
type Config struct {
	Lexicon     LexiconConfig     `yaml:"lexicon" mapstructure:"lexicon"`
	Lint        LintConfig        `yaml:"lint" mapstructure:"lint"`
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	History     HistoryConfig     `yaml:"history" mapstructure:"history"`
}

// LexiconConfig locates the wordlist files and the dictionary document
type LexiconConfig struct {
	ApprovedPath  string `yaml:"approved_path" mapstructure:"approved_path"`
	ForbiddenPath string `yaml:"forbidden_path" mapstructure:"forbidden_path"`
	AllowListPath string `yaml:"allow_list_path" mapstructure:"allow_list_path"`

	// DocumentPath is the dictionary document the lexicons are built from
	DocumentPath string `yaml:"document_path" mapstructure:"document_path"`

	// Rebuild forces a fresh build from DocumentPath even if wordlists exist
	Rebuild bool `yaml:"rebuild" mapstructure:"rebuild"`
}

// LintConfig controls rule evaluation
type LintConfig struct {
	MaxSentenceWords int `yaml:"max_sentence_words" mapstructure:"max_sentence_words"`
}

// HTTPConfig controls fetching of http(s) lint inputs
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// CacheConfig controls the extracted-text cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// MaxConsoleIssues caps the issues echoed to the console; reports
	// written to files always contain the full list
	MaxConsoleIssues int `yaml:"max_console_issues" mapstructure:"max_console_issues"`
}

// LLMConfig controls the optional rewrite-suggestion layer
type LLMConfig struct {
	Provider  string  `yaml:"provider" mapstructure:"provider"` // "", "openai", "ollama"
	Model     string  `yaml:"model" mapstructure:"model"`
	APIKey    string  `yaml:"-" mapstructure:"-"` // From environment only, never persisted
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int     `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	RPS       float64 `yaml:"rps" mapstructure:"rps"` // API request rate limit
	Burst     int     `yaml:"burst" mapstructure:"burst"`
}

// HistoryConfig controls the lint-run history database
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	base := defaultBaseDir()

	return &Config{
		Lexicon: LexiconConfig{
			ApprovedPath:  filepath.Join(base, "ste_issue9_approved_words.txt"),
			ForbiddenPath: filepath.Join(base, "ste_issue9_forbidden_words.txt"),
			AllowListPath: filepath.Join(base, "ste_issue9_all_caps_words.txt"),
		},
		Lint: LintConfig{
			MaxSentenceWords: 20,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "stelint/0.1 (+https://github.com/stelint/stelint)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     filepath.Join(base, "cache"),
			TTL:     24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			MaxConsoleIssues: 200,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 1000,
			RPS:       1,
			Burst:     2,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(base, "history.db"),
		},
	}
}

// defaultBaseDir returns ~/.stelint, falling back to the working directory
func defaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stelint"
	}
	return filepath.Join(home, ".stelint")
}
