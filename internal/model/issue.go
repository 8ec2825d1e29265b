package model

import "time"

// IssueKind classifies a lint finding
type IssueKind string

const (
	KindForbiddenWord   IssueKind = "ForbiddenWord"   // word on the official forbidden list
	KindUnapprovedWord  IssueKind = "UnapprovedWord"  // word outside the approved lexicon and allow-list
	KindSentenceTooLong IssueKind = "SentenceTooLong" // sentence exceeds the word budget
	KindPassiveVoice    IssueKind = "PassiveVoice"    // be-verb + past participle heuristic match
)

// Span is a half-open [Start, End) byte offset range into the linted text
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NoSentence marks issues that are not tied to a sentence
const NoSentence = -1

// Issue represents one lint finding
type Issue struct {
	Kind    IssueKind `json:"kind"`    // Finding classification
	Message string    `json:"message"` // Human-readable description
	Span    Span      `json:"span"`    // Location in the original text

	// SentenceIndex is the 0-based sentence the issue belongs to,
	// or NoSentence for word-level and passive-voice findings
	SentenceIndex int `json:"sentence_index"`

	Suggestion string `json:"suggestion"` // Remediation hint
}

// Report represents the complete result of linting one text
type Report struct {
	Source           string    `json:"source"`             // File path, URL, or "stdin"/"text"
	LintedAt         time.Time `json:"linted_at"`          // When the lint ran
	MaxSentenceWords int       `json:"max_sentence_words"` // Word budget applied

	Issues []Issue `json:"issues"` // Ordered findings

	Rewrite *RewriteSummary `json:"rewrite,omitempty"` // Optional LLM rewrite draft (never affects Issues)
}

// CountByKind tallies issues per kind
func (r *Report) CountByKind() map[IssueKind]int {
	counts := make(map[IssueKind]int)
	for _, issue := range r.Issues {
		counts[issue.Kind]++
	}
	return counts
}

// RewriteSummary contains optional LLM-drafted rewrites for flagged sentences
// CRITICAL: This never affects the issue list and is clearly separated
type RewriteSummary struct {
	Enabled  bool     `json:"enabled"`
	Provider string   `json:"provider,omitempty"` // openai, ollama
	Model    string   `json:"model,omitempty"`    // Model name
	DraftMD  string   `json:"draft_md,omitempty"` // Markdown rewrite draft
	Warnings []string `json:"warnings,omitempty"` // Any issues during generation
}
