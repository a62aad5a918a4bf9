package eoalpha

import "strings"

// nfcReplacer composes known Esperanto NFD pairs in a single pass.
var nfcReplacer = strings.NewReplacer(
	// Lowercase
	"c\u0302", "\u0109", // c + circumflex -> ĉ
	"g\u0302", "\u011d", // g + circumflex -> ĝ
	"h\u0302", "\u0125", // h + circumflex -> ĥ
	"j\u0302", "\u0135", // j + circumflex -> ĵ
	"s\u0302", "\u015d", // s + circumflex -> ŝ
	"u\u0306", "\u016d", // u + breve      -> ŭ
	// Uppercase
	"C\u0302", "\u0108", // C + circumflex -> Ĉ
	"G\u0302", "\u011c", // G + circumflex -> Ĝ
	"H\u0302", "\u0124", // H + circumflex -> Ĥ
	"J\u0302", "\u0134", // J + circumflex -> Ĵ
	"S\u0302", "\u015c", // S + circumflex -> Ŝ
	"U\u0306", "\u016c", // U + breve      -> Ŭ
)

// ComposeNFC replaces known NFD decomposed sequences for the 6 Esperanto
// letters with diacritics.
// This is NOT full Unicode NFC — only Esperanto-specific pairs.
// For full NFC, preprocess with golang.org/x/text/unicode/norm externally.
func ComposeNFC(s string) string {
	// Fast path: scan for combining marks U+0302 and U+0306.
	hasCombiner := false
	for _, r := range s {
		if r == 0x0302 || r == 0x0306 {
			hasCombiner = true
			break
		}
	}
	if !hasCombiner {
		return s
	}

	return nfcReplacer.Replace(s)
}
