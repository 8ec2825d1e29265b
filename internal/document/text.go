package document

import (
	"os"
	"strings"
	"unicode/utf8"
)

// extractTextFile reads a plain-text file. Undecodable byte sequences are
// replaced with U+FFFD instead of failing the lint, so the rules still run
// over degraded text.
func extractTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return lossyDecode(data), nil
}

// lossyDecode returns data as a valid UTF-8 string, substituting the
// replacement character for invalid sequences.
func lossyDecode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
