package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stelint/stelint/internal/model"
)

// MockLinter implements the Linter interface
type MockLinter struct {
	ShouldError bool
}

func (m *MockLinter) LintHandle(ctx context.Context, handle string) (*model.Report, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return nil, errors.New("lint error")
	}
	return &model.Report{
		Source:   handle,
		LintedAt: time.Now(),
	}, nil
}

func TestBatchProcessor_ProcessHandles(t *testing.T) {
	processor := NewBatchProcessor(&MockLinter{}, 2)

	handles := []string{"a.txt", "b.txt", "c.txt"}
	results := processor.ProcessHandles(context.Background(), handles)

	if len(results) != len(handles) {
		t.Fatalf("Expected %d results, got %d", len(handles), len(results))
	}

	seen := make(map[string]bool)
	for _, r := range results {
		if r.GetError() != nil {
			t.Errorf("Unexpected error for %s: %v", r.Handle, r.GetError())
		}
		if r.Report == nil || r.Report.Source != r.Handle {
			t.Errorf("Report source mismatch for %s", r.Handle)
		}
		seen[r.Handle] = true
	}
	for _, h := range handles {
		if !seen[h] {
			t.Errorf("Missing result for %s", h)
		}
	}
}

func TestBatchProcessor_Errors(t *testing.T) {
	processor := NewBatchProcessor(&MockLinter{ShouldError: true}, 2)

	results := processor.ProcessHandles(context.Background(), []string{"a.txt"})
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].GetError() == nil {
		t.Error("Expected error result")
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	processor := NewBatchProcessor(&MockLinter{}, 2)

	results := processor.ProcessHandles(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestReadHandlesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.txt")
	content := "a.txt\n\n# comment\nb.txt\na.txt\nhttps://example.com/doc\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	handles, err := ReadHandlesFromFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"a.txt", "b.txt", "https://example.com/doc"}
	if len(handles) != len(want) {
		t.Fatalf("Expected %v, got %v", want, handles)
	}
	for i := range want {
		if handles[i] != want[i] {
			t.Errorf("Handle %d: expected %q, got %q", i, want[i], handles[i])
		}
	}
}
