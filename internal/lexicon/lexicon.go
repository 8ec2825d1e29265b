// Package lexicon builds and holds the ASD-STE100 word sets: the approved
// lexicon (official headwords plus regular inflections), the forbidden
// lexicon (official lowercase headwords, never expanded), and the allow-list
// of capitalized tokens swept from the dictionary document.
package lexicon

import "strings"

// Lexicon is a frozen, case-insensitive word set. It is immutable after
// construction and safe to share by reference across concurrent lints.
type Lexicon struct {
	words map[string]struct{}
}

// New creates a frozen lexicon from the given words, lowercasing each entry
// for matching. Duplicate entries collapse by set semantics.
func New(words []string) *Lexicon {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Lexicon{words: set}
}

// Contains reports whether the lowercased word is in the lexicon.
func (l *Lexicon) Contains(word string) bool {
	if l == nil {
		return false
	}
	_, ok := l.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct entries.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}
