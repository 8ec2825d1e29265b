package lexicon

import "regexp"

// allCapsRE matches a stand-alone capitalized run: an uppercase letter
// followed by two or more uppercase letters, digits, or hyphens.
var allCapsRE = regexp.MustCompile(`\b[A-Z][A-Z0-9-]{2,}\b`)

// sweepStoplist holds table headings and labels that the sweep must never
// treat as vocabulary.
var sweepStoplist = map[string]struct{}{
	"WORD": {}, "APPROVED": {}, "MEANING": {}, "ALTERNATIVES": {}, "STE": {},
	"EXAMPLE": {}, "NON": {}, "PART": {}, "SPEECH": {}, "PAGE": {}, "ISSUE": {},
	"DICTIONARY": {}, "TABLE": {}, "FIGURE": {}, "APPENDIX": {}, "SECTION": {},
	"NOTE": {},
}

// Sweep scans the full document text, independent of table structure, for
// capitalized tokens to supplement the approved set: acronyms and proper
// nouns the standard itself uses verbatim. Purely numeric runs and stoplist
// headings are excluded.
func Sweep(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, m := range allCapsRE.FindAllString(text, -1) {
		if isAllDigits(m) {
			continue
		}
		if _, stop := sweepStoplist[m]; stop {
			continue
		}
		words[m] = struct{}{}
	}
	return words
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
