// Package morph derives regular English inflections from uppercase headwords.
//
// The rules are purely orthographic: third-person singular and plural -S/-ES/-IES,
// past tense -D/-ED with consonant doubling, and present participle -ING with
// e-dropping, IE->YING, and consonant doubling. Irregular forms (GO->WENT,
// CHILD->CHILDREN) are not generated; that is a deliberate limitation of the
// approved-word expansion, not a bug to fix here.
package morph

import "strings"

// VerbInflections returns the base plus its regular inflected forms:
// 3rd-person singular, past tense, and present participle. The base must be
// a non-empty uppercase word; the result always contains the base.
func VerbInflections(base string) map[string]struct{} {
	forms := map[string]struct{}{base: {}}
	low := strings.ToLower(base)

	// 3rd person singular
	switch {
	case endsWithAny(low, "s", "x", "z", "ch", "sh", "o"):
		forms[base+"ES"] = struct{}{}
	case strings.HasSuffix(low, "y") && len(base) > 1 && !isVowel(base[len(base)-2]):
		forms[base[:len(base)-1]+"IES"] = struct{}{}
	default:
		forms[base+"S"] = struct{}{}
	}

	// Past tense
	switch {
	case strings.HasSuffix(low, "e"):
		forms[base+"D"] = struct{}{}
	case doubleFinalConsonant(low):
		forms[base+string(base[len(base)-1])+"ED"] = struct{}{}
	default:
		forms[base+"ED"] = struct{}{}
	}

	// Present participle
	switch {
	case strings.HasSuffix(low, "ie"):
		forms[base[:len(base)-2]+"YING"] = struct{}{} // TIE -> TYING
	case strings.HasSuffix(low, "e") && !strings.HasSuffix(low, "ee"):
		forms[base[:len(base)-1]+"ING"] = struct{}{} // MAKE -> MAKING
	case doubleFinalConsonant(low):
		forms[base+string(base[len(base)-1])+"ING"] = struct{}{} // STOP -> STOPPING
	default:
		forms[base+"ING"] = struct{}{}
	}

	return forms
}

// NounPlurals returns the base plus its regular plural form.
// The base must be a non-empty uppercase word; the result always contains
// the base.
func NounPlurals(base string) map[string]struct{} {
	forms := map[string]struct{}{base: {}}
	low := strings.ToLower(base)

	switch {
	case endsWithAny(low, "s", "x", "z", "ch", "sh"):
		forms[base+"ES"] = struct{}{} // BOX -> BOXES
	case strings.HasSuffix(low, "y") && len(base) > 1 && !isVowel(base[len(base)-2]):
		forms[base[:len(base)-1]+"IES"] = struct{}{} // BODY -> BODIES
	default:
		forms[base+"S"] = struct{}{} // VALVE -> VALVES
	}

	return forms
}

// isVowel reports whether c is an English vowel, case-insensitive
func isVowel(c byte) bool {
	switch c | 0x20 {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func endsWithAny(w string, endings ...string) bool {
	for _, e := range endings {
		if strings.HasSuffix(w, e) {
			return true
		}
	}
	return false
}

// doubleFinalConsonant reports whether the final consonant doubles before
// -ED/-ING: the last three letters form consonant-vowel-consonant and the
// final consonant is not w, x, or y. Expects a lowercase word.
func doubleFinalConsonant(w string) bool {
	if len(w) < 3 {
		return false
	}
	last := w[len(w)-1]
	if last == 'w' || last == 'x' || last == 'y' {
		return false
	}
	return !isVowel(last) && isVowel(w[len(w)-2]) && !isVowel(w[len(w)-3])
}
