package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/stelint/stelint/internal/model"
)

// csvHeader is the stable column order of the CSV report
var csvHeader = []string{"kind", "message", "span", "sentence_index", "suggestion"}

// Renderer writes lint reports to files and the console
type Renderer struct {
	maxConsoleIssues int
}

// NewRenderer creates a new renderer
func NewRenderer(maxConsoleIssues int) *Renderer {
	if maxConsoleIssues <= 0 {
		maxConsoleIssues = 200
	}
	return &Renderer{maxConsoleIssues: maxConsoleIssues}
}

// WriteCSV writes the report issues as CSV, one row per issue.
func (r *Renderer) WriteCSV(w io.Writer, report *model.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, issue := range report.Issues {
		sentenceIndex := ""
		if issue.SentenceIndex != model.NoSentence {
			sentenceIndex = strconv.Itoa(issue.SentenceIndex)
		}
		row := []string{
			string(issue.Kind),
			issue.Message,
			fmt.Sprintf("%d:%d", issue.Span.Start, issue.Span.End),
			sentenceIndex,
			issue.Suggestion,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// RenderCSV writes the CSV report to a file
func (r *Renderer) RenderCSV(report *model.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return r.WriteCSV(f, report)
}

// WriteJSON writes the full report as indented JSON.
func (r *Renderer) WriteJSON(w io.Writer, report *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// RenderJSON writes the JSON report to a file
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return r.WriteJSON(f, report)
}

// RenderRewriteMarkdown writes an LLM rewrite draft to its own file
func (r *Renderer) RenderRewriteMarkdown(markdown, path string) error {
	if err := os.WriteFile(path, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("write rewrite draft: %w", err)
	}
	return nil
}

// RenderSummary prints a human-readable summary to stdout. Console output is
// capped; file reports always carry the full issue list.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\nLint report for %s\n", report.Source)

	counts := report.CountByKind()
	fmt.Printf("  Forbidden words:     %d\n", counts[model.KindForbiddenWord])
	fmt.Printf("  Unapproved words:    %d\n", counts[model.KindUnapprovedWord])
	fmt.Printf("  Sentences too long:  %d\n", counts[model.KindSentenceTooLong])
	fmt.Printf("  Possible passives:   %d\n", counts[model.KindPassiveVoice])
	fmt.Println()

	shown := report.Issues
	if len(shown) > r.maxConsoleIssues {
		shown = shown[:r.maxConsoleIssues]
	}
	for _, issue := range shown {
		fmt.Printf("  [%s] %d:%d %s\n", issue.Kind, issue.Span.Start, issue.Span.End, issue.Message)
	}
	if len(report.Issues) > len(shown) {
		fmt.Printf("  ... %d more issues (write a CSV or JSON report for the full list)\n",
			len(report.Issues)-len(shown))
	}

	fmt.Printf("Total issues: %d\n", len(report.Issues))
}

// trimExt strips the file extension from a path, if any.
func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
