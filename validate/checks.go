package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/eo-ai-labs/eo-lang-nlp/internal/eoalpha"
)

// ── Encoding check ─────────────────────────────────────────────────────

// appendEncodingIssues flags runs of bytes that do not form valid UTF-8.
func appendEncodingIssues(issues []Issue, s string) []Issue {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError || size != 1 {
			i += size
			continue
		}

		// Extend over the whole invalid run.
		start := i
		for i < len(s) {
			r, size = utf8.DecodeRuneInString(s[i:])
			if r != utf8.RuneError || size != 1 {
				break
			}
			i++
		}

		if len(issues) >= maxIssues {
			return issues
		}
		issues = append(issues, Issue{
			Type:     Encoding,
			Severity: Error,
			Start:    start,
			End:      i,
			Text:     s[start:i],
			Message:  "invalid UTF-8 sequence",
		})
	}
	return issues
}

// ── Mixed-system check ─────────────────────────────────────────────────

// Marker substrings per ASCII system, matched on ASCII-lowercased text.
var (
	xMarkers = []string{"cx", "gx", "hx", "jx", "sx", "ux"}
	hMarkers = []string{"ch", "gh", "hh", "jh", "sh"}
)

// span is a half-open byte range within the validated text.
type span struct {
	start, end int
}

// appendMixedSystemIssues flags markers of a writing system other than the
// dominant one. The dominant system is the one with the most markers; ties
// prefer diacritics over the x-system over the h-system, since diacritics
// are the least likely to appear by accident.
func appendMixedSystemIssues(issues []Issue, s string) []Issue {
	uSpans := diacriticSpans(s)

	lower := eoalpha.ASCIILower(s)
	xSpans := findAll(lower, xMarkers)
	hSpans := findAll(lower, hMarkers)

	present := 0
	for _, n := range []int{len(uSpans), len(xSpans), len(hSpans)} {
		if n > 0 {
			present++
		}
	}
	if present < 2 {
		return issues
	}

	uDominant := len(uSpans) >= len(xSpans) && len(uSpans) >= len(hSpans)
	xDominant := !uDominant && len(xSpans) >= len(hSpans)

	if !uDominant {
		issues = appendMarkerIssues(issues, s, uSpans,
			"diacritic letter outside the dominant writing system")
	}
	if !xDominant {
		issues = appendMarkerIssues(issues, s, xSpans,
			"x-system digraph outside the dominant writing system")
	}
	if uDominant || xDominant {
		issues = appendMarkerIssues(issues, s, hSpans,
			"h-system digraph outside the dominant writing system")
	}
	return issues
}

// appendMarkerIssues converts marker spans into warning issues.
func appendMarkerIssues(issues []Issue, s string, spans []span, msg string) []Issue {
	for _, sp := range spans {
		if len(issues) >= maxIssues {
			return issues
		}
		issues = append(issues, Issue{
			Type:     MixedSystem,
			Severity: Warning,
			Start:    sp.start,
			End:      sp.end,
			Text:     s[sp.start:sp.end],
			Message:  msg,
		})
	}
	return issues
}

// diacriticSpans locates every Esperanto diacritic rune in s.
func diacriticSpans(s string) []span {
	var spans []span
	for i, r := range s {
		if eoalpha.IsDiacritic(r) {
			spans = append(spans, span{i, i + utf8.RuneLen(r)})
		}
	}
	return spans
}

// findAll locates every non-overlapping occurrence of each pattern in s.
func findAll(s string, patterns []string) []span {
	var spans []span
	for _, p := range patterns {
		for off := 0; ; {
			idx := strings.Index(s[off:], p)
			if idx < 0 {
				break
			}
			start := off + idx
			spans = append(spans, span{start, start + len(p)})
			off = start + len(p)
		}
	}
	return spans
}

// ── Decomposed check ───────────────────────────────────────────────────

// appendDecomposedIssues flags NFD combining sequences for the Esperanto
// letters: a combining circumflex (U+0302) or breve (U+0306) where the
// composed letter should appear. The issue spans the base rune and the
// combining mark together.
func appendDecomposedIssues(issues []Issue, s string) []Issue {
	prevStart := -1
	for i, r := range s {
		if r == 0x0302 || r == 0x0306 {
			start := prevStart
			if start < 0 {
				start = i
			}
			end := i + utf8.RuneLen(r)

			if len(issues) >= maxIssues {
				return issues
			}
			issues = append(issues, Issue{
				Type:     Decomposed,
				Severity: Info,
				Start:    start,
				End:      end,
				Text:     s[start:end],
				Message:  "decomposed diacritic, expected NFC",
			})
		}
		prevStart = i
	}
	return issues
}
