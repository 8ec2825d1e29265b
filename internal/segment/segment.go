// Package segment splits prose into word tokens and sentences, keeping
// half-open byte offsets into the source text so findings can be addressed
// precisely.
package segment

import (
	"regexp"
	"strings"
)

// wordRE matches one token: a letter followed by letters, digits, hyphens,
// slashes, or apostrophes.
var wordRE = regexp.MustCompile(`[A-Za-z][A-Za-z0-9/'-]*`)

// terminatorRE matches one sentence terminator.
var terminatorRE = regexp.MustCompile(`[.!?]`)

// Token is a word-like substring with its [Start, End) offsets
type Token struct {
	Text  string
	Start int
	End   int
}

// Sentence is a trimmed sentence with the [Start, End) offsets of the
// untrimmed chunk it was cut from
type Sentence struct {
	Text  string
	Start int
	End   int
}

// Tokenize scans text left to right for maximal word runs. Punctuation-only
// runs are never emitted; digit-only filtering is the rule engine's concern.
func Tokenize(text string) []Token {
	matches := wordRE.FindAllStringIndex(text, -1)
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{
			Text:  text[m[0]:m[1]],
			Start: m[0],
			End:   m[1],
		})
	}
	return tokens
}

// SplitSentences cuts text at sentence terminators (. ! ?). Each sentence
// runs from the previous terminator (or the text start) through and including
// the terminator. A trailing fragment without a terminator is kept if it is
// non-empty after trimming; chunks that trim to nothing are dropped, so
// consecutive terminators do not produce empty sentences.
func SplitSentences(text string) []Sentence {
	var sentences []Sentence

	start := 0
	for _, m := range terminatorRE.FindAllStringIndex(text, -1) {
		end := m[1]
		if chunk := strings.TrimSpace(text[start:end]); chunk != "" {
			sentences = append(sentences, Sentence{Text: chunk, Start: start, End: end})
		}
		start = end
	}

	if start < len(text) {
		if chunk := strings.TrimSpace(text[start:]); chunk != "" {
			sentences = append(sentences, Sentence{Text: chunk, Start: start, End: len(text)})
		}
	}

	return sentences
}
