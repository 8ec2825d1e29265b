package document

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path   string
		want   Format
		wantOK bool
	}{
		{"doc.pdf", FormatPDF, true},
		{"doc.PDF", FormatPDF, true},
		{"notes.txt", FormatText, true},
		{"page.html", FormatHTML, true},
		{"image.png", "", false},
	}

	for _, tt := range tests {
		got, err := Detect(tt.path)
		if tt.wantOK && (err != nil || got != tt.want) {
			t.Errorf("Detect(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
		}
		if !tt.wantOK && err == nil {
			t.Errorf("Detect(%q) expected error", tt.path)
		}
	}
}

func TestExtractText_PlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("Stop the engine."), 0644); err != nil {
		t.Fatal(err)
	}

	src := NewSource(nil)
	text, err := src.ExtractText(context.Background(), path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "Stop the engine." {
		t.Errorf("Got %q", text)
	}
}

func TestExtractText_LossyDecode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	// 0xE9 is é in Latin-1, invalid as a standalone UTF-8 byte
	if err := os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9, ' ', 'o', 'k'}, 0644); err != nil {
		t.Fatal(err)
	}

	src := NewSource(nil)
	text, err := src.ExtractText(context.Background(), path)
	if err != nil {
		t.Fatalf("Lossy decode must not fail the extraction: %v", err)
	}
	if !strings.Contains(text, "�") {
		t.Errorf("Expected replacement character in %q", text)
	}
	if !strings.Contains(text, "ok") {
		t.Errorf("Valid content must survive, got %q", text)
	}
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	src := NewSource(nil)

	_, err := src.ExtractText(context.Background(), "document.png")

	var extractErr *ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("Expected ExtractionError, got %v", err)
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	src := NewSource(nil)

	_, err := src.ExtractText(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))

	var extractErr *ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("Expected ExtractionError, got %v", err)
	}
}

func TestExtractText_HTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	markup := `<html><head><style>p {color: red}</style></head>
	<body><p>Open the valve.</p><script>var x = "hidden";</script></body></html>`
	if err := os.WriteFile(path, []byte(markup), 0644); err != nil {
		t.Fatal(err)
	}

	src := NewSource(nil)
	text, err := src.ExtractText(context.Background(), path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(text, "Open the valve.") {
		t.Errorf("Expected visible text, got %q", text)
	}
	if strings.Contains(text, "hidden") || strings.Contains(text, "color") {
		t.Errorf("Script/style content must be skipped, got %q", text)
	}
}

func TestExtractText_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("<html><body><p>Remove the pump.</p></body></html>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "stelint-test/0.1", 1<<20)
	src := NewSource(fetcher)

	text, err := src.ExtractText(context.Background(), server.URL+"/doc")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(text, "Remove the pump.") {
		t.Errorf("Got %q", text)
	}
}

func TestExtractText_RobotsDisallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private\n"))
			return
		}
		_, _ = w.Write([]byte("<html><body>secret</body></html>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "stelint-test/0.1", 1<<20)
	src := NewSource(fetcher)

	_, err := src.ExtractText(context.Background(), server.URL+"/private/doc")
	if err == nil {
		t.Fatal("Expected robots.txt disallow to fail the extraction")
	}
}

func TestExtractText_URLWithoutFetcher(t *testing.T) {
	src := NewSource(nil)
	if _, err := src.ExtractText(context.Background(), "https://example.com/doc"); err == nil {
		t.Error("Expected error when http fetching is disabled")
	}
}
