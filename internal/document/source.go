// Package document turns a document handle (a local pdf/txt/html file or an
// http(s) URL) into its full plain text. Extraction is all-or-nothing: no
// partial page results reach the caller.
package document

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a supported document format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatText Format = "txt"
	FormatHTML Format = "html"
)

// ExtractionError wraps a failure to extract any text from a document.
type ExtractionError struct {
	Handle string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Handle, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Source extracts full text from documents
type Source struct {
	fetcher *Fetcher // nil disables http(s) handles
}

// NewSource creates a Source. A nil fetcher restricts it to local files.
func NewSource(fetcher *Fetcher) *Source {
	return &Source{fetcher: fetcher}
}

// Detect returns the document format for a local path by extension.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".txt", ".text", ".md":
		return FormatText, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", filepath.Ext(path))
	}
}

// IsURL reports whether the handle is an http(s) URL rather than a path.
func IsURL(handle string) bool {
	return strings.HasPrefix(handle, "http://") || strings.HasPrefix(handle, "https://")
}

// ExtractText returns the full plain text of the document behind handle.
// Local files dispatch by extension; http(s) handles are fetched and treated
// as HTML. Failures wrap into an ExtractionError.
func (s *Source) ExtractText(ctx context.Context, handle string) (string, error) {
	if IsURL(handle) {
		if s.fetcher == nil {
			return "", &ExtractionError{Handle: handle, Err: fmt.Errorf("http fetching disabled")}
		}
		body, err := s.fetcher.FetchWithRetry(ctx, handle)
		if err != nil {
			return "", &ExtractionError{Handle: handle, Err: err}
		}
		text, err := extractHTML(body)
		if err != nil {
			return "", &ExtractionError{Handle: handle, Err: err}
		}
		return text, nil
	}

	format, err := Detect(handle)
	if err != nil {
		return "", &ExtractionError{Handle: handle, Err: err}
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = extractPDF(handle)
	case FormatText:
		text, err = extractTextFile(handle)
	case FormatHTML:
		text, err = extractHTMLFile(handle)
	}
	if err != nil {
		return "", &ExtractionError{Handle: handle, Err: err}
	}
	return text, nil
}
