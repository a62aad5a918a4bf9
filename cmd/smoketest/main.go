// Command smoketest scans a directory of .txt files and exercises the
// library against real-world Esperanto text: it detects the writing
// system of each file, verifies the lossless x-system round trip, and
// aggregates validation scores.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/eo-ai-labs/eo-lang-nlp/data"
	"github.com/eo-ai-labs/eo-lang-nlp/detect"
	"github.com/eo-ai-labs/eo-lang-nlp/translit"
	"github.com/eo-ai-labs/eo-lang-nlp/validate"
)

const (
	maxWorkers     = 4
	expectedArgs   = 2
	bytesToKBShift = 10
)

type Stats struct {
	mu            sync.Mutex
	filesScanned  int
	totalBytes    int64
	systemCounts  map[translit.System]int
	roundTripOK   int
	roundTripFail int
	scoreSum      int
	lowScoreFiles int
	exceptionHits int
}

type fileResult struct {
	path          string
	bytes         int64
	system        translit.System
	roundTripFail bool
	score         int
	exceptionHits int
}

// exceptionFragments holds the built-in h-system exception list, used to
// report how often real corpus text actually needs the protection.
var exceptionFragments = parseFragments(data.HExceptions)

func parseFragments(raw string) []string {
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

func countExceptionHits(text string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, frag := range exceptionFragments {
		n += strings.Count(lower, frag)
	}
	return n
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	dirPath := os.Args[1]
	stats := &Stats{
		systemCounts: make(map[translit.System]int),
	}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(p, stats)
		}(path)
	}

	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)
}

func processFile(path string, stats *Stats) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		return
	}

	fmt.Fprintf(os.Stderr, "START %s (%d KB)\n", path, len(raw)>>bytesToKBShift)
	fileStart := time.Now()

	text := norm.NFC.String(string(raw))

	res := fileResult{
		path:          path,
		bytes:         int64(len(raw)),
		system:        detect.Detect(text).System,
		score:         validate.Validate(text).Score,
		exceptionHits: countExceptionHits(text),
	}

	// The x-system round trip is lossless for any NFC input, so a
	// mismatch here is a library bug, not a data problem.
	back := translit.XSystemToUTF8(translit.UTF8ToXSystem(text))
	if back != text {
		res.roundTripFail = true
		logRoundTripFailure(path, text, back)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (system %s, score %d)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), res.system, res.score)

	mergeFileResult(res, stats)
}

func mergeFileResult(res fileResult, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += res.bytes
	stats.systemCounts[res.system]++

	if res.roundTripFail {
		stats.roundTripFail++
	} else {
		stats.roundTripOK++
	}

	stats.scoreSum += res.score
	if res.score < 90 {
		stats.lowScoreFiles++
	}
	stats.exceptionHits += res.exceptionHits
}

func logRoundTripFailure(path, original, reconstructed string) {
	pos, got, want := firstDivergence(original, reconstructed)
	fmt.Fprintf(os.Stderr, "ROUND_TRIP_FAIL: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
		path, pos, got, want)
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:       %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:         %d\n", stats.totalBytes)
	fmt.Printf("Round trip OK:       %d\n", stats.roundTripOK)
	fmt.Printf("Round trip FAIL:     %d\n", stats.roundTripFail)
	fmt.Printf("Low score files:     %d\n", stats.lowScoreFiles)
	fmt.Printf("Exception hits:      %d\n", stats.exceptionHits)
	if stats.filesScanned > 0 {
		fmt.Printf("Average score:       %.1f\n", float64(stats.scoreSum)/float64(stats.filesScanned))
	}
	fmt.Println()

	fmt.Println("Writing system distribution:")
	printSystemStats("UTF-8", translit.UTF8, stats.systemCounts, stats.filesScanned)
	printSystemStats("x-system", translit.XSystem, stats.systemCounts, stats.filesScanned)
	printSystemStats("h-system", translit.HSystem, stats.systemCounts, stats.filesScanned)
	printSystemStats("Unknown", translit.Unknown, stats.systemCounts, stats.filesScanned)
}

func printSystemStats(label string, system translit.System, counts map[translit.System]int, total int) {
	count := counts[system]
	percentage := 0.0
	if total > 0 {
		percentage = float64(count) / float64(total) * 100
	}
	fmt.Printf("  %-15s %d  (%.1f%%)\n", label+":", count, percentage)
}
