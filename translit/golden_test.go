package translit

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenCase represents a single golden conversion case.
type goldenCase struct {
	Name  string `json:"name"`
	From  string `json:"from"`
	To    string `json:"to"`
	Input string `json:"input"`
	Want  string `json:"want"`
}

const goldenPath = "../data/golden/translit.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("translit.json not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			got := convertGolden(t, tc)
			if got != tc.Want {
				t.Errorf("Convert(%s, %s, %q) = %q, want %q", tc.From, tc.To, tc.Input, got, tc.Want)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		cases[i].Want = convertGolden(t, cases[i])
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden cases: %v", err)
	}
	if err := os.WriteFile(goldenPath, append(out, '\n'), 0o644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}
	t.Logf("updated %s with %d cases", goldenPath, len(cases))
}

func convertGolden(t *testing.T, tc goldenCase) string {
	t.Helper()

	from, err := ParseSystem(tc.From)
	if err != nil {
		t.Fatalf("case %q: %v", tc.Name, err)
	}
	to, err := ParseSystem(tc.To)
	if err != nil {
		t.Fatalf("case %q: %v", tc.Name, err)
	}
	got, err := Convert(from, to, tc.Input)
	if err != nil {
		t.Fatalf("case %q: %v", tc.Name, err)
	}
	return got
}
