// Command eotext converts Esperanto text between writing systems.
//
// Usage:
//
//	eotext <from> <to> "<input text>"
//	eotext <from> <to>              (reads the text from stdin)
//
// where from and to are one of u (UTF-8 with diacritics), x (x-system)
// or h (h-system).
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/eo-ai-labs/eo-lang-nlp/translit"
)

func main() {
	if len(os.Args) != 3 && len(os.Args) != 4 {
		usage()
	}

	from, err := translit.ParseSystem(os.Args[1])
	if err != nil {
		usage()
	}
	to, err := translit.ParseSystem(os.Args[2])
	if err != nil {
		usage()
	}

	var text string
	if len(os.Args) == 4 {
		text = os.Args[3]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: reading stdin: %v\n", os.Args[0], err)
			os.Exit(1)
		}
		// Piped text may arrive decomposed (e.g. from macOS filenames);
		// a quoted argument is taken exactly as given.
		text = norm.NFC.String(strings.TrimSuffix(string(data), "\n"))
	}

	out, err := translit.Convert(from, to, text)
	if err != nil {
		usage()
	}
	fmt.Println(out)
}

func usage() {
	fmt.Printf("Usage: %s <from> <to> \"<input text>\"\n", os.Args[0])
	fmt.Println("where `from` and `to` are one of the following letters:")
	fmt.Println("    u   UTF-8 input (with diacritics)")
	fmt.Println("    x   x-system input")
	fmt.Println("    h   h-system input")
	fmt.Println("If the text argument is omitted, the text is read from stdin.")
	fmt.Printf("Example: %s x u \"sxangxo\"\n", os.Args[0])
	os.Exit(1)
}
