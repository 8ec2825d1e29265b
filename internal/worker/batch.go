package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/stelint/stelint/internal/model"
)

// Linter lints one document handle into a report
type Linter interface {
	LintHandle(ctx context.Context, handle string) (*model.Report, error)
}

// LintJob lints a single file or URL
type LintJob struct {
	Handle string
	Linter Linter
}

// Execute executes the lint job
func (j *LintJob) Execute(ctx context.Context) Result {
	report, err := j.Linter.LintHandle(ctx, j.Handle)
	return &LintResult{
		Handle: j.Handle,
		Report: report,
		Error:  err,
	}
}

// LintResult represents the result of one lint job
type LintResult struct {
	Handle string
	Report *model.Report
	Error  error
}

// GetError returns the error from the lint result
func (r *LintResult) GetError() error {
	return r.Error
}

// BatchProcessor lints multiple documents concurrently
type BatchProcessor struct {
	linter      Linter
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(linter Linter, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		linter:      linter,
		concurrency: concurrency,
	}
}

// ProcessHandles lints the given handles concurrently
func (b *BatchProcessor) ProcessHandles(ctx context.Context, handles []string) []*LintResult {
	if len(handles) == 0 {
		return []*LintResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, handle := range handles {
		pool.Submit(&LintJob{
			Handle: handle,
			Linter: b.linter,
		})
	}

	results := pool.Wait()

	lintResults := make([]*LintResult, len(results))
	for i, result := range results {
		lintResults[i] = result.(*LintResult)
	}

	return lintResults
}

// ProcessFile reads document handles from a list file and lints them
// concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*LintResult, error) {
	handles, err := ReadHandlesFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read handles: %w", err)
	}

	return b.ProcessHandles(ctx, handles), nil
}

// ReadHandlesFromFile reads document handles from a file, one per line.
// Blank lines and #-comments are skipped; duplicates collapse.
func ReadHandlesFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var handles []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			handles = append(handles, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return handles, nil
}
