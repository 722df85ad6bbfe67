package bench

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/natefinch/atomic"
)

// Result is the timing of one contender.
type Result struct {
	Name    string
	Elapsed time.Duration

	// Sink is the sum of sentinels found; it keeps the work observable and
	// must match across contenders.
	Sink int64
}

// Report is the outcome of one benchmark run.
type Report struct {
	RunID    string
	Started  time.Time
	Rounds   int
	Capacity int
	Baseline string
	Results  []Result // sorted by Name
}

func (r *Report) sortResults() {
	slices.SortFunc(r.Results, func(a, b Result) int { return strings.Compare(a.Name, b.Name) })
}

// Result returns the result for name.
func (r *Report) Result(name string) (Result, bool) {
	for _, result := range r.Results {
		if result.Name == name {
			return result, true
		}
	}

	return Result{}, false
}

// Ratio returns elapsed(name) / elapsed(baseline). It returns 0 if either is
// missing or the baseline took no measurable time.
func (r *Report) Ratio(name string) float64 {
	result, ok := r.Result(name)
	if !ok {
		return 0
	}

	baseline, ok := r.Result(r.Baseline)
	if !ok || baseline.Elapsed <= 0 {
		return 0
	}

	return float64(result.Elapsed) / float64(baseline.Elapsed)
}

// Fastest returns the result with the smallest elapsed time. Ties go to the
// baseline, then to the first name in order.
func (r *Report) Fastest() (Result, bool) {
	if len(r.Results) == 0 {
		return Result{}, false
	}

	best := r.Results[0]
	for _, result := range r.Results[1:] {
		if result.Elapsed < best.Elapsed || (result.Elapsed == best.Elapsed && result.Name == r.Baseline) {
			best = result
		}
	}

	return best, true
}

// CheckBaselineFastest returns ErrBaselineNotFastest if any contender took
// strictly less time than the baseline. Ties pass.
func (r *Report) CheckBaselineFastest() error {
	baseline, ok := r.Result(r.Baseline)
	if !ok {
		return fmt.Errorf("%w: baseline %q missing from report", ErrUnknownContender, r.Baseline)
	}

	var faster []string

	for _, result := range r.Results {
		if result.Elapsed < baseline.Elapsed {
			faster = append(faster, fmt.Sprintf("%s (%.2fx)", result.Name, r.Ratio(result.Name)))
		}
	}

	if len(faster) > 0 {
		return fmt.Errorf("%w: %s beat %s", ErrBaselineNotFastest, strings.Join(faster, ", "), r.Baseline)
	}

	return nil
}

// WriteTSV writes one "name<TAB>nanoseconds" line per result, sorted by name.
func (r *Report) WriteTSV(w io.Writer) error {
	for _, result := range r.Results {
		_, err := fmt.Fprintf(w, "%s\t%d\n", result.Name, result.Elapsed.Nanoseconds())
		if err != nil {
			return fmt.Errorf("writing tsv: %w", err)
		}
	}

	return nil
}

// WriteMarkdown writes a markdown report with system info and a results
// table.
func (r *Report) WriteMarkdown(w io.Writer, sys SystemInfo) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## Run %s\n\n", r.Started.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("- run: %s\n", r.RunID))
	sb.WriteString(sys.Markdown())
	sb.WriteString(fmt.Sprintf("- rounds: %d, capacity: %d, baseline: %s\n\n", r.Rounds, r.Capacity, r.Baseline))

	sb.WriteString("| contender | elapsed | per round | vs baseline |\n")
	sb.WriteString("|---|---:|---:|---:|\n")

	for _, result := range r.Results {
		perRound := time.Duration(0)
		if r.Rounds > 0 {
			perRound = result.Elapsed / time.Duration(r.Rounds)
		}

		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %.2fx |\n", result.Name, result.Elapsed, perRound, r.Ratio(result.Name)))
	}

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}

	return nil
}

// WriteMarkdownFile writes the markdown report to path atomically.
func (r *Report) WriteMarkdownFile(path string, sys SystemInfo) error {
	var buf bytes.Buffer

	err := r.WriteMarkdown(&buf, sys)
	if err != nil {
		return err
	}

	err = atomic.WriteFile(path, &buf)
	if err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}

	return nil
}
