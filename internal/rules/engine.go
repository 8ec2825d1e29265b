// Package rules evaluates the ASD-STE100 lint rules over tokenized text.
//
// Four rules run per text: sentence word-count, forbidden words, unapproved
// words, and a passive-voice surface heuristic. The passive rule is a plain
// be-verb + "-ed" pattern match, not a parse: it over- and under-matches
// ("interested" as an adjective will flag), and its output wording stays
// hedged for that reason.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/stelint/stelint/internal/lexicon"
	"github.com/stelint/stelint/internal/model"
	"github.com/stelint/stelint/internal/segment"
)

// DefaultMaxSentenceWords is the STE writing-rule sentence budget.
const DefaultMaxSentenceWords = 20

var passiveRE = regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+\w+ed\b`)

// Engine applies the lint rules against loaded, immutable lexicons. An Engine
// never mutates its lexicons and is safe for concurrent use across texts.
type Engine struct {
	approved  *lexicon.Lexicon
	forbidden *lexicon.Lexicon
	allowList *lexicon.Lexicon
	maxWords  int
}

// NewEngine creates a rule engine. The allow-list is unioned into the
// effective approved set at lookup time. A non-positive maxWords falls back
// to DefaultMaxSentenceWords.
func NewEngine(approved, forbidden, allowList *lexicon.Lexicon, maxWords int) *Engine {
	if maxWords <= 0 {
		maxWords = DefaultMaxSentenceWords
	}
	return &Engine{
		approved:  approved,
		forbidden: forbidden,
		allowList: allowList,
		maxWords:  maxWords,
	}
}

// Lint evaluates all rules and returns the ordered issue list: first every
// SentenceTooLong finding in sentence order, then the word-level findings in
// text order, then the passive-voice findings in text order. The ordering is
// part of the output contract and must stay stable.
func (e *Engine) Lint(text string) []model.Issue {
	var issues []model.Issue

	issues = append(issues, e.checkSentenceLength(text)...)
	issues = append(issues, e.checkWords(text)...)
	issues = append(issues, e.checkPassive(text)...)

	return issues
}

// checkSentenceLength flags sentences whose token count exceeds the budget.
func (e *Engine) checkSentenceLength(text string) []model.Issue {
	var issues []model.Issue

	for idx, sent := range segment.SplitSentences(text) {
		words := len(segment.Tokenize(sent.Text))
		if words <= e.maxWords {
			continue
		}
		issues = append(issues, model.Issue{
			Kind:          model.KindSentenceTooLong,
			Message:       fmt.Sprintf("Sentence has %d words (>%d).", words, e.maxWords),
			Span:          model.Span{Start: sent.Start, End: sent.End},
			SentenceIndex: idx,
			Suggestion:    fmt.Sprintf("Split into shorter sentences (<= %d words).", e.maxWords),
		})
	}

	return issues
}

// checkWords flags forbidden and unapproved tokens. Tokens shorter than
// three characters, purely numeric tokens, and acronyms are exempt. A
// forbidden match suppresses the approval check for that occurrence.
func (e *Engine) checkWords(text string) []model.Issue {
	var issues []model.Issue

	for _, tok := range segment.Tokenize(text) {
		low := strings.ToLower(tok.Text)
		if len(low) < 3 || isNumeric(low) || isAcronym(tok.Text) {
			continue
		}

		if e.forbidden.Contains(low) {
			issues = append(issues, model.Issue{
				Kind:          model.KindForbiddenWord,
				Message:       fmt.Sprintf("Forbidden word: '%s'", tok.Text),
				Span:          model.Span{Start: tok.Start, End: tok.End},
				SentenceIndex: model.NoSentence,
				Suggestion:    "Replace with an approved alternative per ASD-STE100.",
			})
			continue
		}

		if !e.approved.Contains(low) && !e.allowList.Contains(low) {
			issues = append(issues, model.Issue{
				Kind:          model.KindUnapprovedWord,
				Message:       fmt.Sprintf("Not in approved lexicon: '%s'", tok.Text),
				Span:          model.Span{Start: tok.Start, End: tok.End},
				SentenceIndex: model.NoSentence,
				Suggestion:    "Prefer an approved STE word or rephrase.",
			})
		}
	}

	return issues
}

// checkPassive flags every non-overlapping be-verb + "-ed" word pair.
func (e *Engine) checkPassive(text string) []model.Issue {
	var issues []model.Issue

	for _, m := range passiveRE.FindAllStringIndex(text, -1) {
		issues = append(issues, model.Issue{
			Kind:          model.KindPassiveVoice,
			Message:       fmt.Sprintf("Possible passive: '%s'", text[m[0]:m[1]]),
			Span:          model.Span{Start: m[0], End: m[1]},
			SentenceIndex: model.NoSentence,
			Suggestion:    "Use active voice where possible.",
		})
	}

	return issues
}

// isAcronym reports whether the raw token is all-uppercase with at least two
// alphabetic characters. Acronyms are exempt from both word checks.
func isAcronym(token string) bool {
	letters := 0
	for _, r := range token {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			letters++
		}
	}
	return letters >= 2
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
