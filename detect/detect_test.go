package detect

import (
	"math"
	"testing"

	"github.com/eo-ai-labs/eo-lang-nlp/translit"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  translit.System
	}{
		{"utf8 text", "eĥoŝanĝo ĉiuĵaŭde estas fama pangramo", translit.UTF8},
		{"x-system text", "ehxosxangxo cxiujxauxde estas fama pangramo", translit.XSystem},
		{"h-system text", "ehhoshangho chiujhaude estas fama pangramo", translit.HSystem},
		{"single diacritic decides", "ĉu vi venos", translit.UTF8},
		{"uppercase x digraphs", "EHXOSXANGXO CXIUJXAUXDE", translit.XSystem},
		{"plain ascii", "la kato sidas sur la mato", translit.Unknown},
		{"empty", "", translit.Unknown},
		{"digits only", "12345 67890", translit.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Detect(tt.input); got.System != tt.want {
				t.Errorf("Detect(%q).System = %v, want %v", tt.input, got.System, tt.want)
			}
		})
	}
}

func TestDetectAll(t *testing.T) {
	t.Parallel()

	results := DetectAll("ehxosxangxo cxiujxauxde")
	if len(results) != 3 {
		t.Fatalf("DetectAll returned %d results, want 3", len(results))
	}
	if results[0].System != translit.XSystem {
		t.Errorf("top result = %v, want XSystem", results[0].System)
	}

	var sum float64
	for i, r := range results {
		if i > 0 && r.Confidence > results[i-1].Confidence {
			t.Errorf("results not sorted: %v after %v", r, results[i-1])
		}
		sum += r.Confidence
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("confidences sum to %v, want 1.0", sum)
	}
}

func TestDetectAllNoMarkers(t *testing.T) {
	t.Parallel()

	if results := DetectAll("plain text with no markers at all"); results != nil {
		t.Errorf("DetectAll of marker-free text = %v, want nil", results)
	}
}

func TestToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"eĥoŝanĝo ĉiuĵaŭde", "u"},
		{"ehxosxangxo", "x"},
		{"shangho kaj ghardeno", "h"},
		{"no markers", ""},
	}

	for _, tt := range tests {
		if got := Token(tt.input); got != tt.want {
			t.Errorf("Token(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func BenchmarkDetect(b *testing.B) {
	s := "eĥoŝanĝo ĉiuĵaŭde estas fama pangramo kiu uzas la tutan alfabeton"
	for b.Loop() {
		Detect(s)
	}
}
