package llm

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"github.com/stelint/stelint/internal/model"
)

// Suggester wraps a Provider and produces the optional RewriteSummary for a
// report. API calls are rate-limited so batch runs stay within provider
// quotas.
type Suggester struct {
	provider Provider
	limiter  *rate.Limiter
	config   Config
}

// NewSuggester creates a Suggester from configuration. An empty provider
// name yields a disabled (but valid) Suggester.
func NewSuggester(config Config) (*Suggester, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	rps := config.RPS
	if rps <= 0 {
		rps = 1
	}
	burst := config.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Suggester{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Suggester) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// Suggest generates a rewrite draft for the report's text. A report with no
// issues needs no rewrite and returns nil. The result never feeds back into
// the issue list.
func (s *Suggester) Suggest(ctx context.Context, text string, report *model.Report) (*model.RewriteSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}
	if len(report.Issues) == 0 {
		return nil, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := s.provider.Rewrite(ctx, RewriteRequest{
		Text:             text,
		Issues:           report.Issues,
		MaxSentenceWords: report.MaxSentenceWords,
		Model:            s.config.Model,
		MaxTokens:        s.config.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	summary := &model.RewriteSummary{
		Enabled:  true,
		Provider: s.provider.Name(),
		Model:    resp.Model,
		DraftMD:  resp.Draft,
	}
	if resp.Draft == "" {
		summary.Warnings = append(summary.Warnings, "provider returned an empty draft")
	}

	return summary, nil
}

// RenderSeparateMarkdown renders the rewrite draft as a stand-alone
// Markdown document, clearly labeled as advisory output.
func RenderSeparateMarkdown(summary *model.RewriteSummary) string {
	var sb strings.Builder

	sb.WriteString("# Rewrite Draft (advisory)\n\n")
	fmt.Fprintf(&sb, "Generated by %s/%s. This draft is a starting point; it does not replace the lint findings.\n\n",
		summary.Provider, summary.Model)
	sb.WriteString(summary.DraftMD)
	sb.WriteString("\n")

	if len(summary.Warnings) > 0 {
		sb.WriteString("\n## Warnings\n\n")
		for _, w := range summary.Warnings {
			fmt.Fprintf(&sb, "- %s\n", w)
		}
	}

	return sb.String()
}
