package rules

import (
	"strings"
	"testing"

	"github.com/stelint/stelint/internal/lexicon"
	"github.com/stelint/stelint/internal/model"
)

func newTestEngine(approved, forbidden, allow []string, maxWords int) *Engine {
	return NewEngine(lexicon.New(approved), lexicon.New(forbidden), lexicon.New(allow), maxWords)
}

func TestLint_CleanSTESentence(t *testing.T) {
	approved := []string{
		"the", "operator", "operators", "start", "starts", "started", "starting",
		"system", "systems", "and", "do", "does", "did", "doing",
		"procedure", "procedures", "in", "minute", "minutes",
	}
	engine := newTestEngine(approved, nil, nil, 20)

	issues := engine.Lint("The operator starts the system and does the procedure in 25 minutes.")

	for _, issue := range issues {
		switch issue.Kind {
		case model.KindForbiddenWord, model.KindUnapprovedWord:
			t.Errorf("Unexpected word issue: %s", issue.Message)
		case model.KindPassiveVoice:
			t.Errorf("Unexpected passive issue: %s", issue.Message)
		}
	}
}

func TestLint_PassiveVoice(t *testing.T) {
	engine := newTestEngine(nil, nil, nil, 20)
	text := "The valve was opened by the technician."

	issues := engine.Lint(text)

	var passive []model.Issue
	for _, issue := range issues {
		if issue.Kind == model.KindPassiveVoice {
			passive = append(passive, issue)
		}
	}
	if len(passive) != 1 {
		t.Fatalf("Expected exactly one passive issue, got %d", len(passive))
	}

	got := text[passive[0].Span.Start:passive[0].Span.End]
	if got != "was opened" {
		t.Errorf("Expected span over 'was opened', got %q", got)
	}
}

func TestLint_SentenceLengthBoundary(t *testing.T) {
	words := make([]string, 0, 21)
	approved := make([]string, 0, 21)
	for i := 0; i < 21; i++ {
		words = append(words, "valve")
		approved = append(approved, "valve")
	}

	engine := newTestEngine(approved, nil, nil, 20)

	// Exactly 20 words: no issue
	issues := engine.Lint(strings.Join(words[:20], " ") + ".")
	for _, issue := range issues {
		if issue.Kind == model.KindSentenceTooLong {
			t.Errorf("20-word sentence must not flag: %s", issue.Message)
		}
	}

	// 21 words: exactly one issue naming the count
	issues = engine.Lint(strings.Join(words, " ") + ".")
	var long []model.Issue
	for _, issue := range issues {
		if issue.Kind == model.KindSentenceTooLong {
			long = append(long, issue)
		}
	}
	if len(long) != 1 {
		t.Fatalf("Expected exactly one SentenceTooLong issue, got %d", len(long))
	}
	if !strings.Contains(long[0].Message, "21") {
		t.Errorf("Message must state the observed count, got %q", long[0].Message)
	}
	if long[0].SentenceIndex != 0 {
		t.Errorf("Expected sentence index 0, got %d", long[0].SentenceIndex)
	}
}

func TestLint_ForbiddenSuppressesUnapproved(t *testing.T) {
	engine := newTestEngine(nil, []string{"accomplish"}, nil, 20)

	issues := engine.Lint("You must accomplish the task.")

	var forbidden, unapproved int
	for _, issue := range issues {
		span := issue.Span
		word := "You must accomplish the task."[span.Start:span.End]
		if word == "accomplish" {
			switch issue.Kind {
			case model.KindForbiddenWord:
				forbidden++
			case model.KindUnapprovedWord:
				unapproved++
			}
		}
	}
	if forbidden != 1 {
		t.Errorf("Expected one ForbiddenWord for 'accomplish', got %d", forbidden)
	}
	if unapproved != 0 {
		t.Errorf("Forbidden token must not also flag as unapproved, got %d", unapproved)
	}
}

func TestLint_Exemptions(t *testing.T) {
	engine := newTestEngine(nil, nil, nil, 20)

	issues := engine.Lint("An APU is OK at 35 C.")

	for _, issue := range issues {
		if issue.Kind != model.KindForbiddenWord && issue.Kind != model.KindUnapprovedWord {
			continue
		}
		word := "An APU is OK at 35 C."[issue.Span.Start:issue.Span.End]
		switch word {
		case "APU":
			t.Error("Acronyms must be exempt from word checks")
		case "An", "is", "OK", "at", "C":
			t.Errorf("Token %q is shorter than 3 characters and must be exempt", word)
		}
	}
}

func TestLint_AllowListCountsAsApproved(t *testing.T) {
	engine := newTestEngine(nil, nil, []string{"TORQUE"}, 20)

	issues := engine.Lint("Apply torque now.")

	for _, issue := range issues {
		if issue.Kind == model.KindUnapprovedWord && strings.Contains(issue.Message, "torque") {
			t.Error("Allow-listed word must count as approved")
		}
	}
}

func TestLint_ThreePhaseOrdering(t *testing.T) {
	long := strings.Repeat("word ", 21)
	text := long + "ends. The pump was damaged badly."
	engine := newTestEngine([]string{"the", "pump", "badly", "ends"}, []string{"word"}, nil, 20)

	issues := engine.Lint(text)
	if len(issues) == 0 {
		t.Fatal("Expected issues")
	}

	phase := func(k model.IssueKind) int {
		switch k {
		case model.KindSentenceTooLong:
			return 0
		case model.KindForbiddenWord, model.KindUnapprovedWord:
			return 1
		default:
			return 2
		}
	}

	prevPhase, prevStart := 0, -1
	for _, issue := range issues {
		p := phase(issue.Kind)
		if p < prevPhase {
			t.Fatalf("Issue ordering violated: %s after phase %d", issue.Kind, prevPhase)
		}
		if p == prevPhase && issue.Span.Start < prevStart {
			t.Fatalf("Within-phase text order violated at %s span %d", issue.Kind, issue.Span.Start)
		}
		if p != prevPhase {
			prevStart = -1
		}
		prevPhase, prevStart = p, issue.Span.Start
	}
}

func TestLint_EmptyText(t *testing.T) {
	engine := newTestEngine(nil, nil, nil, 20)
	if issues := engine.Lint(""); len(issues) != 0 {
		t.Errorf("Expected no issues for empty text, got %d", len(issues))
	}
}
