package lexicon

import (
	"regexp"
	"sort"
	"strings"

	"github.com/stelint/stelint/internal/morph"
)

// Dictionary-table grammar. The STE dictionary is a long sequence of table
// sections, each introduced by a repeated header line; the lines that follow
// hold one entry each:
//
//	header  = "Word" WS "Approved meaning" ["/"] WS "STE"   (case-insensitive)
//	row     = candidate WS? "(" pos-hint ")" ...
//	candidate = LETTER (LETTER | DIGIT | "-" | "/" | " ")+
//	pos-hint  = (LETTER | "." | " ")+
//
// Lines before the first header, and lines that do not match the row shape,
// are skipped without failing the build.
var (
	headerRE = regexp.MustCompile(`(?i)Word\s+Approved meaning/?\s+STE`)
	rowRE    = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9/ -]+?)\s*\(([A-Za-z. ]+)\)(\s|$)`)
)

// BuildResult holds the three word sets produced by one build pass, in the
// canonical case of the source document and sorted for stable output.
type BuildResult struct {
	Approved  []string // official approved headwords + inflections (uppercase)
	Forbidden []string // official forbidden headwords (lowercase, verbatim)
	AllowList []string // capitalized tokens swept from the full text
}

// Build parses the dictionary document text into approved and forbidden
// headword sets and sweeps the allow-list. Malformed rows are skipped; a text
// without any table header yields empty sets, which callers should treat as
// a format-drift signal rather than an error.
func Build(text string) BuildResult {
	approved := make(map[string]struct{})
	forbidden := make(map[string]struct{})

	inSection := false
	for _, line := range strings.Split(text, "\n") {
		if headerRE.MatchString(line) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}

		m := rowRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		classify(strings.TrimSpace(m[1]), strings.ToLower(strings.TrimSpace(m[2])), approved, forbidden)
	}

	return BuildResult{
		Approved:  sortedWords(approved),
		Forbidden: sortedWords(forbidden),
		AllowList: sortedWords(Sweep(text)),
	}
}

// classify sorts one headword candidate into the approved or forbidden set
// by the standard's typographic convention: all-uppercase entries are
// approved, all-lowercase entries are forbidden, anything else is dropped.
func classify(headword, posHint string, approved, forbidden map[string]struct{}) {
	if !strings.ContainsFunc(headword, isASCIILetter) {
		return
	}

	upper := strings.ToUpper(headword)
	lower := strings.ToLower(headword)

	switch {
	case headword == upper && headword != lower:
		// Approved headword: expand verbs and nouns, keep the rest bare.
		switch {
		case strings.Contains(posHint, "v"):
			for form := range morph.VerbInflections(headword) {
				approved[form] = struct{}{}
			}
		case strings.Contains(posHint, "n"):
			for form := range morph.NounPlurals(headword) {
				approved[form] = struct{}{}
			}
		default:
			approved[headword] = struct{}{}
		}

	case headword == lower && headword != upper:
		// Forbidden headword, verbatim, never expanded.
		forbidden[headword] = struct{}{}

	default:
		// Mixed case: unparseable row, skip.
	}
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func sortedWords(set map[string]struct{}) []string {
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
