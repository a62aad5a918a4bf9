// Package validate provides text quality validation for Esperanto text.
//
// The validator checks three categories of issues:
//
//   - Encoding: byte sequences that are not valid UTF-8.
//   - Mixed system: transliteration markers of a second writing system
//     inside text dominated by another (e.g. "sxi" in a text otherwise
//     written with diacritics) — usually the residue of an incomplete
//     conversion.
//   - Decomposed: NFD combining sequences (base letter + U+0302/U+0306)
//     where the composed Esperanto letters should appear.
//
// Two API layers are provided:
//
//   - Structured: Validate returns a Report with a quality score (0–100)
//     and a positioned issue list sorted by byte offset.
//   - Convenience: IsValid reports whether no error-severity issues exist.
//
// The quality score starts at 100 and deducts points per issue:
// error −10, warning −3, info −1, with a floor of 0. Score deductions
// are absolute, not normalized by text length.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Mixed-system detection counts marker substrings; genuine words that
//     happen to contain a digraph ("flughaveno") can be flagged when the
//     rest of the text uses diacritics.
//   - Spelling and grammar are not checked.
package validate

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
)

// IssueType classifies a validation issue.
type IssueType int

const (
	Encoding    IssueType = iota // invalid UTF-8
	MixedSystem                  // marker of a non-dominant writing system
	Decomposed                   // NFD sequence instead of a composed letter
)

// issueTypeNames maps IssueType values to their string names.
var issueTypeNames = [...]string{
	Encoding:    "encoding",
	MixedSystem: "mixed_system",
	Decomposed:  "decomposed",
}

// issueTypeFromName maps string names back to IssueType values.
var issueTypeFromName = map[string]IssueType{
	"encoding":     Encoding,
	"mixed_system": MixedSystem,
	"decomposed":   Decomposed,
}

// String returns the name of the issue type.
func (t IssueType) String() string {
	if int(t) >= 0 && int(t) < len(issueTypeNames) {
		return issueTypeNames[t]
	}
	return fmt.Sprintf("IssueType(%d)", int(t))
}

// MarshalJSON encodes the issue type as a JSON string (e.g. "encoding").
func (t IssueType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "encoding") into an IssueType.
func (t *IssueType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	it, ok := issueTypeFromName[s]
	if !ok {
		return fmt.Errorf("validate: unknown issue type: %q", s)
	}
	*t = it
	return nil
}

// Severity indicates the severity of a validation issue.
// Higher numeric values mean higher severity.
type Severity int

const (
	Info    Severity = iota // informational
	Warning                 // should fix
	Error                   // must fix
)

// severityNames maps Severity values to their string names.
var severityNames = [...]string{
	Info:    "info",
	Warning: "warning",
	Error:   "error",
}

// severityFromName maps string names back to Severity values.
var severityFromName = map[string]Severity{
	"info":    Info,
	"warning": Warning,
	"error":   Error,
}

// String returns the name of the severity.
func (s Severity) String() string {
	if int(s) >= 0 && int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// MarshalJSON encodes the severity as a JSON string (e.g. "warning").
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "warning") into a Severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	sev, ok := severityFromName[str]
	if !ok {
		return fmt.Errorf("validate: unknown severity: %q", str)
	}
	*s = sev
	return nil
}

// Issue is a single positioned validation finding.
// Start and End are byte offsets into the validated text; Text is the
// offending slice itself.
type Issue struct {
	Type     IssueType `json:"type"`
	Severity Severity  `json:"severity"`
	Start    int       `json:"start"`
	End      int       `json:"end"`
	Text     string    `json:"text"`
	Message  string    `json:"message"`
}

// Report holds the outcome of a validation run.
type Report struct {
	Score  int     `json:"score"`
	Issues []Issue `json:"issues,omitempty"`
}

const (
	maxScore  = 100
	maxIssues = 100
)

// Score deductions per severity.
const (
	errorDeduction   = 10
	warningDeduction = 3
	infoDeduction    = 1
)

// Validate runs all checks over s and returns a scored report with issues
// sorted by byte offset.
func Validate(s string) Report {
	var issues []Issue
	issues = appendEncodingIssues(issues, s)
	issues = appendMixedSystemIssues(issues, s)
	issues = appendDecomposedIssues(issues, s)

	slices.SortStableFunc(issues, func(a, b Issue) int {
		return cmp.Compare(a.Start, b.Start)
	})

	score := maxScore
	for _, issue := range issues {
		switch issue.Severity {
		case Error:
			score -= errorDeduction
		case Warning:
			score -= warningDeduction
		default:
			score -= infoDeduction
		}
	}
	if score < 0 {
		score = 0
	}

	return Report{Score: score, Issues: issues}
}

// IsValid reports whether s has no error-severity issues.
func IsValid(s string) bool {
	for _, issue := range Validate(s).Issues {
		if issue.Severity == Error {
			return false
		}
	}
	return true
}
