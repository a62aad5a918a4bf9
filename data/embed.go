// Package data embeds built-in language data files.
package data

import _ "embed"

// HExceptions is the h-system exception fragment list: one lowercase word
// fragment per line, with '#' comment lines. Each fragment contains an "h"
// or "au" that is part of the word itself and must not be decoded as a
// transliteration marker.
//
//go:embed h_exceptions.txt
var HExceptions string
