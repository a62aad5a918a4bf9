package translit

import (
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/eo-ai-labs/eo-lang-nlp/data"
)

// The decode automata are built once at package init and shared read-only.
var (
	fromXMatcher = newInsensitiveMatcher(patternsOf(fromX))

	// The h-system automaton also carries the exception fragments, appended
	// after the digraph table so decode can tell the two apart by pattern
	// index. Leftmost-longest matching makes a fragment win over any digraph
	// or trigger it contains.
	fromHMatcher = newInsensitiveMatcher(
		append(patternsOf(fromH), parseExceptions(data.HExceptions)...))
)

// newInsensitiveMatcher builds a leftmost-longest, ASCII-case-insensitive
// multi-pattern automaton.
func newInsensitiveMatcher(patterns []string) ahocorasick.AhoCorasick {
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  true,
	})
	return builder.Build(patterns)
}

// decode rewrites s through ac in a single left-to-right pass: digraph
// matches (pattern indexes within table) are replaced by their diacritic
// letters, exception-fragment matches are copied through verbatim, and
// unmatched text is copied unchanged.
func decode(s string, ac ahocorasick.AhoCorasick, table []decodePattern) string {
	matches := ac.FindAll(s)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m.Start()])
		matched := s[m.Start():m.End()]
		if idx := m.Pattern(); idx < len(table) {
			writeDecoded(&b, table[idx], matched)
		} else {
			// Exception fragment: a real use of "h" or "au", kept as written.
			b.WriteString(matched)
		}
		last = m.End()
	}
	b.WriteString(s[last:])
	return b.String()
}

// writeDecoded writes the diacritic letter for one matched digraph. The
// letter is uppercase when either matched character is uppercase. The "au"
// trigger decodes to a letter pair, carrying case per input character
// ("AU" -> "AŬ", "aU" -> "aŬ").
func writeDecoded(b *strings.Builder, p decodePattern, matched string) {
	if p.pattern == "au" {
		b.WriteByte(matched[0]) // 'a' or 'A', unchanged
		if matched[1] == 'U' {
			b.WriteRune('Ŭ')
		} else {
			b.WriteRune('ŭ')
		}
		return
	}

	if matched == p.pattern {
		b.WriteRune(p.lower)
	} else {
		b.WriteRune(p.upper)
	}
}
