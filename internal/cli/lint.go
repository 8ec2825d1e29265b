package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stelint/stelint/internal/model"
	"github.com/stelint/stelint/internal/pipeline"
)

var (
	lintText         string
	outCSV           string
	outJSON          string
	maxSentenceWords int
	rebuild          bool
	noCache          bool
	lintTimeout      time.Duration
	llmEnabled       bool
	llmProvider      string
	llmModel         string

	approvedPath  string
	forbiddenPath string
	allowListPath string
	dictionary    string
)

// lintCmd represents the lint command
var lintCmd = &cobra.Command{
	Use:   "lint [file-or-url]",
	Short: "Lint a document against the STE writing rules",
	Long: `Lint checks one document (pdf, txt, md, html or an http(s) URL)
against the ASD-STE100 rules:
- Forbidden words from the official dictionary
- Words outside the approved lexicon and allow-list
- Sentences over the word budget
- Probable passive voice

Example:
  stelint lint manual.pdf
  stelint lint notes.txt --csv report.csv --json report.json
  stelint lint https://example.com/procedures.html
  stelint lint --text "The valve was opened by the operator."
  stelint lint manual.pdf --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	// Input flags
	lintCmd.Flags().StringVar(&lintText, "text", "", "lint this text instead of a file or URL")

	// Output flags
	lintCmd.Flags().StringVar(&outCSV, "csv", "", "output CSV path (optional)")
	lintCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")

	// Rule flags
	lintCmd.Flags().IntVar(&maxSentenceWords, "max-sentence-words", 0, "sentence word budget (default from config, 20)")
	lintCmd.Flags().BoolVar(&rebuild, "rebuild", false, "rebuild the word lists from the dictionary document first")

	// Lexicon flags
	lintCmd.Flags().StringVar(&approvedPath, "approved", "", "approved wordlist path (default from config)")
	lintCmd.Flags().StringVar(&forbiddenPath, "forbidden", "", "forbidden wordlist path (default from config)")
	lintCmd.Flags().StringVar(&allowListPath, "allow-list", "", "allow-list path (default from config)")
	lintCmd.Flags().StringVar(&dictionary, "dictionary", "", "dictionary document for auto-building missing word lists")
	lintCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the extracted-text cache")
	lintCmd.Flags().DurationVar(&lintTimeout, "timeout", 2*time.Minute, "overall lint timeout")

	// LLM flags
	lintCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an advisory rewrite draft")
	lintCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	lintCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runLint(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && lintText == "" {
		return fmt.Errorf("nothing to lint: pass a file, a URL, or --text")
	}
	if len(args) == 1 && lintText != "" {
		return fmt.Errorf("pass either a file/URL or --text, not both")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lintTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Lexicon.Rebuild = rebuild
	applyLexiconFlags(cfg)
	if maxSentenceWords > 0 {
		cfg.Lint.MaxSentenceWords = maxSentenceWords
	}
	if llmEnabled {
		if err := configureLLM(cfg); err != nil {
			return err
		}
	}

	p := pipeline.NewPipeline(cfg)
	defer func() { _ = p.Close() }()

	var report *model.Report
	if lintText != "" {
		report, err = p.LintText(ctx, "text", lintText)
	} else {
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "Linting: %s\n", args[0])
		}
		report, err = p.LintHandle(ctx, args[0])
	}
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	if err := p.RenderReport(report, outCSV, outJSON, cfg.Output.Verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// applyLexiconFlags overrides the configured lexicon paths with flag values.
func applyLexiconFlags(cfg *model.Config) {
	if approvedPath != "" {
		cfg.Lexicon.ApprovedPath = approvedPath
	}
	if forbiddenPath != "" {
		cfg.Lexicon.ForbiddenPath = forbiddenPath
	}
	if allowListPath != "" {
		cfg.Lexicon.AllowListPath = allowListPath
	}
	if dictionary != "" {
		cfg.Lexicon.DocumentPath = dictionary
	}
}

// configureLLM fills in the LLM settings from flags and the environment.
func configureLLM(cfg *model.Config) error {
	cfg.LLM.Provider = llmProvider
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	default:
		return fmt.Errorf("unknown LLM provider %q (supported: openai, ollama)", llmProvider)
	}
	return nil
}
