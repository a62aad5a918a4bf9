// Package translit converts Esperanto text among its UTF-8 orthography and
// the ASCII x-system and h-system transliterations.
//
// Properly printed Esperanto uses six letters with diacritics (ĉ, ĝ, ĥ, ĵ,
// ŝ, ŭ) that fall outside ASCII. Writers limited to ASCII mark those letters
// with a suffix instead: the x-system appends "x" ("sxangxo") and is fully
// reversible since "x" is not an Esperanto letter; the h-system appends "h"
// ("shangho") or writes bare "au" for "aŭ", and is ambiguous because "h" and
// "au" also occur in genuine Esperanto words. Decoding the h-system therefore
// consults a built-in list of word fragments (see data.HExceptions) that
// must pass through unchanged: "senchavaj" keeps its "ch", "Nauron" keeps
// its "au".
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - The h-system exception list is fixed at compile time and cannot cover
//     every proper noun or loanword; h-system decoding is approximate.
//   - Input is converted whole in memory; there is no streaming API.
//   - Only the six Esperanto diacritic letters are handled; other diacritics
//     pass through unchanged.
package translit

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/eo-ai-labs/eo-lang-nlp/internal/eoalpha"
)

// System identifies one of the Esperanto writing systems.
type System int

const (
	Unknown System = iota // zero value, no system identified
	UTF8                  // native orthography with diacritic letters
	XSystem               // ASCII digraphs ending in "x" (unambiguous)
	HSystem               // ASCII digraphs ending in "h", bare "au" (ambiguous)
)

// systemNames maps System values to their string names.
var systemNames = [...]string{
	Unknown: "Unknown",
	UTF8:    "UTF-8",
	XSystem: "x-system",
	HSystem: "h-system",
}

// systemFromName maps string names back to System values.
var systemFromName = map[string]System{
	"Unknown":  Unknown,
	"UTF-8":    UTF8,
	"x-system": XSystem,
	"h-system": HSystem,
}

// systemTokens maps System values to their one-letter direction tokens.
var systemTokens = [...]string{
	Unknown: "",
	UTF8:    "u",
	XSystem: "x",
	HSystem: "h",
}

// systemFromToken maps direction tokens back to System values.
var systemFromToken = map[string]System{
	"u": UTF8,
	"x": XSystem,
	"h": HSystem,
}

// String returns the name of the system.
func (s System) String() string {
	if int(s) >= 0 && int(s) < len(systemNames) {
		return systemNames[s]
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// Token returns the one-letter direction token ("u", "x" or "h"),
// or "" for Unknown and out-of-range values.
func (s System) Token() string {
	if int(s) >= 0 && int(s) < len(systemTokens) {
		return systemTokens[s]
	}
	return ""
}

// MarshalJSON encodes the system as a JSON string (e.g. "x-system").
func (s System) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "x-system") into a System.
func (s *System) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	sys, ok := systemFromName[str]
	if !ok {
		return fmt.Errorf("translit: unknown system: %q", str)
	}
	*s = sys
	return nil
}

// ParseSystem maps a direction token ("u", "x" or "h") to its System.
func ParseSystem(token string) (System, error) {
	sys, ok := systemFromToken[token]
	if !ok {
		return Unknown, fmt.Errorf("translit: unknown system token: %q", token)
	}
	return sys, nil
}

// ErrInvalidDirection is returned by Convert when from or to is not one of
// UTF8, XSystem or HSystem.
var ErrInvalidDirection = errors.New("translit: invalid conversion direction")

// valid reports whether s is a concrete writing system.
func (s System) valid() bool {
	return s == UTF8 || s == XSystem || s == HSystem
}

// Convert transliterates s from one writing system to another.
//
// Identity pairs return the input unchanged. The x↔h pairs have no direct
// table and pivot through UTF-8. Any from/to value outside the three
// supported systems returns an error wrapping [ErrInvalidDirection].
func Convert(from, to System, s string) (string, error) {
	if !from.valid() || !to.valid() {
		return "", fmt.Errorf("%w: %v to %v", ErrInvalidDirection, from, to)
	}
	if from == to {
		return s, nil
	}

	switch {
	case from == UTF8 && to == XSystem:
		return UTF8ToXSystem(s), nil
	case from == XSystem && to == UTF8:
		return XSystemToUTF8(s), nil
	case from == UTF8 && to == HSystem:
		return UTF8ToHSystem(s), nil
	case from == HSystem && to == UTF8:
		return HSystemToUTF8(s), nil
	case from == XSystem && to == HSystem:
		return UTF8ToHSystem(XSystemToUTF8(s)), nil
	default: // HSystem -> XSystem
		return UTF8ToXSystem(HSystemToUTF8(s)), nil
	}
}

// UTF8ToXSystem converts UTF-8 "ĵaŭdo" to x-system "jxauxdo".
//
// Digraph case follows the shape of the input: a lowercase letter yields a
// lowercase digraph, an uppercase letter inside an all-caps run yields a
// fully uppercase digraph ("ĤO" -> "HXO"), and an uppercase letter starting
// an ordinarily capitalized word yields a capitalized digraph ("Ĥo" -> "Hxo").
// Decomposed input (base letter + combining mark) is composed first.
func UTF8ToXSystem(s string) string {
	return encode(s, xDigraphs)
}

// UTF8ToHSystem converts UTF-8 "ĵaŭdo" to h-system "jhaudo".
//
// Digraph case shaping matches [UTF8ToXSystem]. Ŭ renders as a bare vowel
// with no suffix letter to case-shift: ŭ always becomes "u" and Ŭ always "U".
func UTF8ToHSystem(s string) string {
	return encode(s, hDigraphs)
}

// XSystemToUTF8 converts x-system "jxauxdo" to UTF-8 "ĵaŭdo".
//
// Digraphs are matched case-insensitively; a digraph with either letter
// uppercase decodes to the uppercase diacritic ("Hx", "hX" and "HX" all
// yield Ĥ).
func XSystemToUTF8(s string) string {
	return decode(s, fromXMatcher, fromX)
}

// HSystemToUTF8 converts h-system "jhaudo" to UTF-8 "ĵaŭdo".
//
// The digraphs "ch", "gh", "hh", "jh", "sh" and the trigger "au" are matched
// case-insensitively under a leftmost-longest rule, so fragments from the
// built-in exception list win over the shorter patterns they contain and are
// copied through unchanged.
func HSystemToUTF8(s string) string {
	return decode(s, fromHMatcher, fromH)
}

// encode replaces each diacritic rune of s with its ASCII rendering from
// digraphs, shaping the output case from the surrounding input: the rune
// before the match decides whether the match starts a capitalized run, and
// the rune after it decides whether the run continues in capitals.
func encode(s string, digraphs map[rune]digraph) string {
	if s == "" {
		return s
	}
	s = eoalpha.ComposeNFC(s)

	var b strings.Builder
	b.Grow(len(s)) // a digraph is never longer than the 2-byte rune it replaces

	var prev rune
	for i, r := range s {
		d, ok := digraphs[r]
		if !ok {
			b.WriteRune(r)
			prev = r
			continue
		}

		leading := prev == 0 || !unicode.IsUpper(prev)
		next, _ := utf8.DecodeRuneInString(s[i+utf8.RuneLen(r):])
		follows := unicode.IsUpper(next)

		b.WriteString(shape(d, unicode.IsUpper(r), leading, follows))
		prev = r
	}
	return b.String()
}

// shape selects the rendering of d for one matched diacritic letter.
// upper is the case of the letter itself; leading reports whether the match
// starts a capitalized run; follows reports whether the next rune is
// uppercase too.
func shape(d digraph, upper, leading, follows bool) string {
	if !upper {
		return d.lower
	}
	if leading && !follows {
		return d.title
	}
	return d.upper
}
