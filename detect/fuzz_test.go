package detect

import (
	"math"
	"testing"
)

func FuzzDetectAll(f *testing.F) {
	f.Add("eĥoŝanĝo ĉiuĵaŭde")
	f.Add("ehxosxangxo cxiujxauxde")
	f.Add("ehhoshangho chiujhaude")
	f.Add("plain text")
	f.Add("")
	f.Add("au au au")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, text string) {
		a := DetectAll(text)
		b := DetectAll(text)

		// Determinism: two calls must agree.
		if len(a) != len(b) {
			t.Fatalf("non-deterministic result count: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("non-deterministic result[%d]: %v vs %v", i, a[i], b[i])
			}
		}

		if len(a) == 0 {
			return
		}

		// Invariant: confidences are sorted descending and sum to 1.
		var sum float64
		for i, r := range a {
			if r.Confidence < 0 || r.Confidence > 1 {
				t.Errorf("result[%d]: confidence %v out of [0, 1]", i, r.Confidence)
			}
			if i > 0 && r.Confidence > a[i-1].Confidence {
				t.Errorf("results not sorted: %v after %v", r, a[i-1])
			}
			sum += r.Confidence
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("confidences sum to %v, want 1.0", sum)
		}

		// Detect must agree with the top DetectAll result.
		if top := Detect(text); top != a[0] {
			t.Errorf("Detect = %v, DetectAll top = %v", top, a[0])
		}
	})
}
