// Package pipeline orchestrates the two stelint workflows: building the
// lexicons from a dictionary document, and linting documents against them.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stelint/stelint/internal/cache"
	"github.com/stelint/stelint/internal/document"
	"github.com/stelint/stelint/internal/history"
	"github.com/stelint/stelint/internal/lexicon"
	"github.com/stelint/stelint/internal/llm"
	"github.com/stelint/stelint/internal/model"
	"github.com/stelint/stelint/internal/rules"
)

// minPlausibleApproved guards against silently building lexicons from a
// document that is not the STE dictionary.
const minPlausibleApproved = 100

// Pipeline orchestrates the complete lint process
type Pipeline struct {
	source    *document.Source
	cache     cache.Cache    // nil when caching is disabled
	suggester *llm.Suggester // Optional LLM rewrite layer (nil if disabled)
	history   *history.Store // nil when history is disabled
	renderer  *Renderer
	config    *model.Config

	// engineMu serializes lexicon builds and engine construction; batch
	// workers share one Pipeline, and the engine is only handed out frozen.
	engineMu sync.Mutex
	engine   *rules.Engine // guarded by engineMu, built on first lint
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	fetcher := document.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes)

	var textCache cache.Cache
	if cfg.Cache.Enabled {
		textCache = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
	}

	// Create LLM suggester if configured
	var suggester *llm.Suggester
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSuggester(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Printf("Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			suggester = s
		}
	}

	var store *history.Store
	if cfg.History.Enabled && cfg.History.Path != "" {
		s, err := history.Open(cfg.History.Path)
		if err != nil {
			fmt.Printf("Warning: Failed to open history database: %v\n", err)
		} else {
			store = s
		}
	}

	return &Pipeline{
		source:    document.NewSource(fetcher),
		cache:     textCache,
		suggester: suggester,
		history:   store,
		renderer:  NewRenderer(cfg.Output.MaxConsoleIssues),
		config:    cfg,
	}
}

// Close releases pipeline resources
func (p *Pipeline) Close() error {
	if p.history != nil {
		return p.history.Close()
	}
	return nil
}

// History returns the lint-run store, or nil when history is disabled.
func (p *Pipeline) History() *history.Store {
	return p.history
}

// BuildStats summarizes a lexicon build
type BuildStats struct {
	Approved  int
	Forbidden int
	AllowList int
}

// BuildLexicons extracts the dictionary document, derives the three wordlists
// and writes them to the configured paths.
func (p *Pipeline) BuildLexicons(ctx context.Context) (*BuildStats, error) {
	p.engineMu.Lock()
	defer p.engineMu.Unlock()
	return p.buildLexicons(ctx)
}

func (p *Pipeline) buildLexicons(ctx context.Context) (*BuildStats, error) {
	docPath := p.config.Lexicon.DocumentPath
	if docPath == "" {
		return nil, fmt.Errorf("no dictionary document configured (set lexicon.document_path)")
	}

	text, err := p.extractText(ctx, docPath)
	if err != nil {
		return nil, fmt.Errorf("extract dictionary: %w", err)
	}

	result := lexicon.Build(text)
	if len(result.Approved) < minPlausibleApproved {
		fmt.Printf("Warning: only %d approved words extracted from %s; is it the STE dictionary?\n",
			len(result.Approved), docPath)
	}

	saves := []struct {
		path  string
		words []string
	}{
		{p.config.Lexicon.ApprovedPath, result.Approved},
		{p.config.Lexicon.ForbiddenPath, result.Forbidden},
		{p.config.Lexicon.AllowListPath, result.AllowList},
	}
	for _, s := range saves {
		if err := lexicon.Save(s.path, s.words); err != nil {
			return nil, fmt.Errorf("save wordlist: %w", err)
		}
	}

	// A rebuild invalidates any previously loaded engine
	p.engine = nil

	return &BuildStats{
		Approved:  len(result.Approved),
		Forbidden: len(result.Forbidden),
		AllowList: len(result.AllowList),
	}, nil
}

// ensureEngine returns the shared rule engine, loading the wordlists on the
// first call and building them first from the dictionary document when they
// are missing or a rebuild is forced. Safe for concurrent use: construction
// runs under engineMu and callers only ever see the finished engine.
func (p *Pipeline) ensureEngine(ctx context.Context) (*rules.Engine, error) {
	p.engineMu.Lock()
	defer p.engineMu.Unlock()

	if p.engine != nil {
		return p.engine, nil
	}

	lex := p.config.Lexicon
	if lex.Rebuild || !lexicon.Exists(lex.ApprovedPath, lex.ForbiddenPath, lex.AllowListPath) {
		if lex.DocumentPath == "" {
			return nil, fmt.Errorf("wordlists not found; run 'stelint build' or set lexicon.document_path: %w",
				lexicon.ErrMissingLexicon)
		}
		if _, err := p.buildLexicons(ctx); err != nil {
			return nil, err
		}
	}

	approved, err := lexicon.Load(lex.ApprovedPath)
	if err != nil {
		return nil, fmt.Errorf("load approved lexicon: %w", err)
	}
	forbidden, err := lexicon.Load(lex.ForbiddenPath)
	if err != nil {
		return nil, fmt.Errorf("load forbidden lexicon: %w", err)
	}
	allowList, err := lexicon.Load(lex.AllowListPath)
	if err != nil {
		return nil, fmt.Errorf("load allow-list: %w", err)
	}

	p.engine = rules.NewEngine(approved, forbidden, allowList, p.config.Lint.MaxSentenceWords)
	return p.engine, nil
}

// LintText lints raw text and generates a complete report. source labels the
// origin in the report ("text" for inline input).
func (p *Pipeline) LintText(ctx context.Context, source, text string) (*model.Report, error) {
	engine, err := p.ensureEngine(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	issues := engine.Lint(text)

	report := &model.Report{
		Source:           source,
		LintedAt:         time.Now().UTC(),
		MaxSentenceWords: p.config.Lint.MaxSentenceWords,
		Issues:           issues,
	}

	// Generate rewrite draft if enabled (AFTER linting, never affects issues)
	if p.suggester != nil && p.suggester.IsEnabled() {
		summary, err := p.suggester.Suggest(ctx, text, report)
		if err != nil {
			// Don't fail the lint, just warn
			fmt.Printf("Warning: LLM rewrite generation failed: %v\n", err)
		} else if summary != nil {
			report.Rewrite = summary
		}
	}

	if p.history != nil {
		if err := p.history.Record(report, time.Since(start)); err != nil {
			fmt.Printf("Warning: Failed to record lint run: %v\n", err)
		}
	}

	return report, nil
}

// LintHandle extracts the text behind a file path or URL and lints it.
func (p *Pipeline) LintHandle(ctx context.Context, handle string) (*model.Report, error) {
	text, err := p.extractText(ctx, handle)
	if err != nil {
		return nil, err
	}
	return p.LintText(ctx, handle, text)
}

// extractText returns the document text, consulting the cache when enabled.
func (p *Pipeline) extractText(ctx context.Context, handle string) (string, error) {
	var key string
	if p.cache != nil {
		key = cache.DocumentKey(handle)
		if cached, found := p.cache.Get(key); found {
			return string(cached), nil
		}
	}

	text, err := p.source.ExtractText(ctx, handle)
	if err != nil {
		return "", err
	}

	if p.cache != nil {
		if err := p.cache.Set(key, []byte(text), p.config.Cache.TTL); err != nil {
			fmt.Printf("Warning: Failed to cache extracted text: %v\n", err)
		}
	}
	return text, nil
}

// RenderReport renders the report to the specified outputs
func (p *Pipeline) RenderReport(report *model.Report, csvPath, jsonPath string, verbose bool) error {
	if csvPath != "" {
		if err := p.renderer.RenderCSV(report, csvPath); err != nil {
			return fmt.Errorf("render CSV: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote CSV: %s\n", csvPath)
		}
	}

	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	// Render rewrite draft to a separate file so it never mixes with findings
	if report.Rewrite != nil && report.Rewrite.Enabled && csvPath != "" {
		mdPath := trimExt(csvPath) + ".rewrite.md"
		markdown := llm.RenderSeparateMarkdown(report.Rewrite)
		if err := p.renderer.RenderRewriteMarkdown(markdown, mdPath); err != nil {
			fmt.Printf("Warning: Failed to write rewrite draft: %v\n", err)
		} else if verbose {
			fmt.Printf("✓ Wrote rewrite draft: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)

	return nil
}
