package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrMissingLexicon signals that a wordlist file is absent at lint time.
// Callers either rebuild from the dictionary document or fail fast.
var ErrMissingLexicon = errors.New("lexicon wordlist missing")

// Save writes words to path as UTF-8 text, one word per line, sorted
// ascending with no duplicates and no blank lines. Rebuilding from identical
// input therefore yields byte-identical files.
func Save(path string, words []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create wordlist dir: %w", err)
	}

	dedup := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		dedup = append(dedup, w)
	}
	sort.Strings(dedup)

	var sb strings.Builder
	for _, w := range dedup {
		sb.WriteString(w)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write wordlist: %w", err)
	}
	return nil
}

// Load reads a wordlist file into a frozen lexicon. Every non-blank trimmed
// line is one entry; unsorted or duplicated input is tolerated and collapses
// by set semantics. A missing file returns ErrMissingLexicon.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingLexicon, path)
		}
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer func() { _ = f.Close() }()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist: %w", err)
	}

	return New(words), nil
}

// Exists reports whether all given wordlist paths are present.
func Exists(paths ...string) bool {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return true
}
