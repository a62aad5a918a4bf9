package translit

import "strings"

// digraph holds the three case shapes of one diacritic letter's ASCII
// rendering in one system.
type digraph struct {
	lower string // ĉ -> "cx"
	upper string // Ĉ inside an all-caps run -> "CX"
	title string // Ĉ starting a capitalized word -> "Cx"
}

// xDigraphs maps the twelve diacritic runes to their x-system renderings.
var xDigraphs = map[rune]digraph{
	'ĉ': {"cx", "CX", "Cx"},
	'Ĉ': {"cx", "CX", "Cx"},
	'ĝ': {"gx", "GX", "Gx"},
	'Ĝ': {"gx", "GX", "Gx"},
	'ĥ': {"hx", "HX", "Hx"},
	'Ĥ': {"hx", "HX", "Hx"},
	'ĵ': {"jx", "JX", "Jx"},
	'Ĵ': {"jx", "JX", "Jx"},
	'ŝ': {"sx", "SX", "Sx"},
	'Ŝ': {"sx", "SX", "Sx"},
	'ŭ': {"ux", "UX", "Ux"},
	'Ŭ': {"ux", "UX", "Ux"},
}

// hDigraphs maps the twelve diacritic runes to their h-system renderings.
// Ŭ renders as a bare vowel — there is no suffix letter to case-shift, so
// uppercase Ŭ is always "U".
var hDigraphs = map[rune]digraph{
	'ĉ': {"ch", "CH", "Ch"},
	'Ĉ': {"ch", "CH", "Ch"},
	'ĝ': {"gh", "GH", "Gh"},
	'Ĝ': {"gh", "GH", "Gh"},
	'ĥ': {"hh", "HH", "Hh"},
	'Ĥ': {"hh", "HH", "Hh"},
	'ĵ': {"jh", "JH", "Jh"},
	'Ĵ': {"jh", "JH", "Jh"},
	'ŝ': {"sh", "SH", "Sh"},
	'Ŝ': {"sh", "SH", "Sh"},
	'ŭ': {"u", "U", "U"},
	'Ŭ': {"u", "U", "U"},
}

// decodePattern pairs one lowercase ASCII pattern with the diacritic letter
// it decodes to in each case.
type decodePattern struct {
	pattern string
	lower   rune
	upper   rune
}

// fromX lists the six x-system digraphs.
var fromX = []decodePattern{
	{"cx", 'ĉ', 'Ĉ'},
	{"gx", 'ĝ', 'Ĝ'},
	{"hx", 'ĥ', 'Ĥ'},
	{"jx", 'ĵ', 'Ĵ'},
	{"sx", 'ŝ', 'Ŝ'},
	{"ux", 'ŭ', 'Ŭ'},
}

// fromH lists the five h-system consonant digraphs and the "au" trigger.
// The trigger decodes to a letter pair ("aŭ") and carries case per input
// character; writeDecoded special-cases it.
var fromH = []decodePattern{
	{"ch", 'ĉ', 'Ĉ'},
	{"gh", 'ĝ', 'Ĝ'},
	{"hh", 'ĥ', 'Ĥ'},
	{"jh", 'ĵ', 'Ĵ'},
	{"sh", 'ŝ', 'Ŝ'},
	{"au", 'ŭ', 'Ŭ'},
}

// patternsOf extracts the pattern strings of a decode table.
func patternsOf(table []decodePattern) []string {
	patterns := make([]string, len(table))
	for i, p := range table {
		patterns[i] = p.pattern
	}
	return patterns
}

// parseExceptions splits the embedded exception file into fragments,
// skipping blank and comment lines.
func parseExceptions(raw string) []string {
	var frags []string
	for line := range strings.Lines(raw) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		frags = append(frags, line)
	}
	return frags
}
