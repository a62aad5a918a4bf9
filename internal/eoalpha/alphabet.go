// Package eoalpha provides Esperanto alphabet utilities.
//
// Esperanto extends the basic Latin alphabet with six diacritic letters:
// ĉ, ĝ, ĥ, ĵ, ŝ (circumflex) and ŭ (breve), each with an uppercase pair.
// Esperanto has no special casing rules — standard Unicode case mapping
// applies to all twelve runes — so this package only covers alphabet
// membership and NFC composition of the decomposed forms.
//
// All functions are safe for concurrent use.
package eoalpha

// baseOf maps the twelve Esperanto diacritic runes to their undecorated
// ASCII base letters.
var baseOf = map[rune]rune{
	'ĉ': 'c', 'Ĉ': 'C', // ĉ Ĉ
	'ĝ': 'g', 'Ĝ': 'G', // ĝ Ĝ
	'ĥ': 'h', 'Ĥ': 'H', // ĥ Ĥ
	'ĵ': 'j', 'Ĵ': 'J', // ĵ Ĵ
	'ŝ': 's', 'Ŝ': 'S', // ŝ Ŝ
	'ŭ': 'u', 'Ŭ': 'U', // ŭ Ŭ
}

// IsDiacritic reports whether r is one of the twelve Esperanto diacritic runes.
func IsDiacritic(r rune) bool {
	_, ok := baseOf[r]
	return ok
}

// Base returns the undecorated ASCII letter for an Esperanto diacritic rune
// (ĉ → c, Ĝ → G) and reports whether r is one of the twelve diacritic runes.
func Base(r rune) (rune, bool) {
	b, ok := baseOf[r]
	return b, ok
}

// ContainsDiacritic reports whether s contains any Esperanto diacritic rune.
func ContainsDiacritic(s string) bool {
	for _, r := range s {
		if _, ok := baseOf[r]; ok {
			return true
		}
	}
	return false
}

// ASCIILower returns s with ASCII letters lowercased. Non-ASCII bytes are
// left untouched, so byte offsets into the result are valid for s as well
// (strings.ToLower can change byte lengths for some non-ASCII runes).
func ASCIILower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
