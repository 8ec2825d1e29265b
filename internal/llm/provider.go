// Package llm drafts STE-conforming rewrites for flagged sentences.
//
// The draft is advisory output, generated after linting: it never adds,
// removes, or reorders issues. Providers are optional and disabled unless
// configured.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/stelint/stelint/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Rewrite generates a rewrite draft for the flagged text
	Rewrite(ctx context.Context, req RewriteRequest) (*RewriteResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// RewriteRequest contains the input for a rewrite draft
type RewriteRequest struct {
	// Text is the original linted text
	Text string

	// Issues are the findings the rewrite should resolve
	Issues []model.Issue

	// MaxSentenceWords is the sentence budget the rewrite must respect
	MaxSentenceWords int

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// RewriteResponse contains the LLM's draft output
type RewriteResponse struct {
	// Draft is the generated rewrite in Markdown
	Draft string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// RPS and Burst throttle API requests across a batch run
	RPS   float64
	Burst int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 1000,
		RPS:       1,
		Burst:     2,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		MaxTokens: mc.MaxTokens,
		RPS:       mc.RPS,
		Burst:     mc.Burst,
	}
}

// BuildPrompt constructs the default rewrite prompt. The issue list is the
// authority: the model is asked to resolve those findings only, not to
// re-judge the text.
func BuildPrompt(req RewriteRequest) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `You are rewriting technical prose to conform to ASD-STE100 Simplified Technical English.

RULES:
1. Resolve ONLY the findings listed below. Do not restyle text that was not flagged.
2. Keep every sentence at or under %d words.
3. Use active voice.
4. Keep the technical meaning exactly; never add or drop facts.

Original text:
%s

Findings to resolve:
`, req.MaxSentenceWords, req.Text)

	for i, issue := range req.Issues {
		if i >= 30 { // Keep the prompt bounded for long documents
			fmt.Fprintf(&sb, "... and %d more findings\n", len(req.Issues)-30)
			break
		}
		fmt.Fprintf(&sb, "- [%s] %s\n", issue.Kind, issue.Message)
	}

	sb.WriteString("\nReturn the rewritten text, then a short bullet list of what you changed.")
	return sb.String()
}
