// Package detect identifies which Esperanto writing system a text uses.
//
// Three systems are recognized: the native UTF-8 orthography (diacritic
// letters present), the x-system (ASCII digraphs ending in "x") and the
// h-system (ASCII digraphs ending in "h", plus the bare "au" trigger).
// Detection is heuristic: it counts system markers and ranks the systems
// by a sum-normalized confidence score. Diacritic runes are unambiguous
// and weigh the most; "au" is a weak marker because it also occurs in
// ordinary words.
//
// Two API layers are provided:
//
//   - Structured: Detect returns a Result with system and confidence.
//     DetectAll returns all three systems ranked by confidence.
//   - Convenience: Token returns the one-letter direction token as a string.
//
// Input longer than 1 MiB is silently truncated (rune-safe). Text with no
// markers of any system (plain ASCII prose, empty input) yields the zero
// Result (System: translit.Unknown).
//
// All functions are safe for concurrent use by multiple goroutines.
package detect

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/eo-ai-labs/eo-lang-nlp/internal/eoalpha"
	"github.com/eo-ai-labs/eo-lang-nlp/translit"
)

// Result holds the outcome of a writing-system detection.
//
// Confidence is a sum-normalized score in [0.0, 1.0]. All three system
// scores are divided by their total, so Confidence reflects the relative
// strength of the detection within this input, not an absolute probability.
type Result struct {
	System     translit.System `json:"system"`
	Confidence float64         `json:"confidence"`
}

// maxInputBytes is the maximum input size; longer inputs are truncated.
const maxInputBytes = 1 << 20 // 1 MiB

// Scoring weights for the marker counts.
const (
	// diacriticWeight amplifies diacritic runes: they belong to exactly one
	// system and cannot appear by accident in ASCII text.
	diacriticWeight = 2.0

	// digraphWeight is the per-occurrence score for the two-letter digraphs
	// of the x- and h-systems.
	digraphWeight = 1.0

	// auTriggerWeight keeps the "au" trigger subordinate to real digraphs:
	// "au" occurs in plenty of words that have nothing to do with ŭ.
	auTriggerWeight = 0.25
)

// xDigraphs and hDigraphs are the marker substrings counted per system,
// matched on ASCII-lowercased text.
var (
	xDigraphs = []string{"cx", "gx", "hx", "jx", "sx", "ux"}
	hDigraphs = []string{"ch", "gh", "hh", "jh", "sh"}
)

// Detect identifies the most likely writing system of s.
// Returns the zero Result when no system markers are present.
func Detect(s string) Result {
	results := DetectAll(s)
	if len(results) == 0 {
		return Result{}
	}
	return results[0]
}

// Token returns the direction token of the most likely writing system of s
// ("u", "x" or "h"), or "" when no system markers are present.
func Token(s string) string {
	return Detect(s).System.Token()
}

// DetectAll returns all three writing systems ranked by descending
// confidence, or nil when no system markers are present.
func DetectAll(s string) []Result {
	if s == "" {
		return nil
	}

	// Truncate to maxInputBytes rune-safely.
	if len(s) > maxInputBytes {
		pos := maxInputBytes
		for pos > 0 && !utf8.RuneStart(s[pos]) {
			pos--
		}
		s = s[:pos]
	}

	diacritics := 0
	for _, r := range s {
		if eoalpha.IsDiacritic(r) {
			diacritics++
		}
	}

	lower := eoalpha.ASCIILower(s)
	xCount := countAny(lower, xDigraphs)
	hCount := countAny(lower, hDigraphs)
	auCount := strings.Count(lower, "au")

	uScore := float64(diacritics) * diacriticWeight
	xScore := float64(xCount) * digraphWeight
	hScore := float64(hCount)*digraphWeight + float64(auCount)*auTriggerWeight

	total := uScore + xScore + hScore
	if total == 0 {
		return nil
	}

	results := []Result{
		{System: translit.UTF8, Confidence: uScore / total},
		{System: translit.XSystem, Confidence: xScore / total},
		{System: translit.HSystem, Confidence: hScore / total},
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})

	return results
}

// countAny sums the non-overlapping occurrence counts of the patterns in s.
func countAny(s string, patterns []string) int {
	n := 0
	for _, p := range patterns {
		n += strings.Count(s, p)
	}
	return n
}
