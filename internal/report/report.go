// Package report aggregates classified headlines into per-source and
// combined counts and renders the textual report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/naz445/news-sentiment/internal/sentiment"
)

// SourceBatch pairs a source with its classified headlines, or with the
// error that left it empty.
type SourceBatch struct {
	Source    string
	Headlines []sentiment.Headline
	Err       error
}

// SourceReport holds per-label counts for one source. When FetchErr is set
// the counts are all zero.
type SourceReport struct {
	Source   string
	Counts   map[sentiment.Label]int
	Total    int
	FetchErr error
}

// Combined is the per-label sum across all sources.
type Combined struct {
	Counts map[sentiment.Label]int
	Total  int
}

func newCounts() map[sentiment.Label]int {
	counts := make(map[sentiment.Label]int, len(sentiment.Labels))
	for _, label := range sentiment.Labels {
		counts[label] = 0
	}
	return counts
}

// Aggregate groups classified headlines by source and counts labels per
// group, plus the combined totals. Empty input yields all-zero counts.
func Aggregate(batches []SourceBatch) ([]SourceReport, Combined) {
	combined := Combined{Counts: newCounts()}
	reports := make([]SourceReport, 0, len(batches))

	for _, batch := range batches {
		r := SourceReport{
			Source:   batch.Source,
			Counts:   newCounts(),
			FetchErr: batch.Err,
		}
		for _, h := range batch.Headlines {
			r.Counts[h.Label]++
			r.Total++
			combined.Counts[h.Label]++
			combined.Total++
		}
		reports = append(reports, r)
	}
	return reports, combined
}

// Render writes the per-headline detail, the per-source summary and the
// combined summary in the fixed textual format.
func Render(w io.Writer, batches []SourceBatch, reports []SourceReport, combined Combined) {
	for _, batch := range batches {
		fmt.Fprintf(w, "\n=== %s ===\n", batch.Source)
		if batch.Err != nil {
			fmt.Fprintf(w, "fetch failed: %v\n", batch.Err)
			continue
		}
		for i, h := range batch.Headlines {
			fmt.Fprintf(w, "%02d. [%s] %s\n", i+1, h.Label, h.Raw)
		}
	}

	fmt.Fprint(w, "\n=== Summary by Source ===\n")
	for _, r := range reports {
		fmt.Fprintf(w, "\n%s\n", r.Source)
		writeCounts(w, r.Counts, r.Total)
	}

	fmt.Fprint(w, "\n=== Combined ===\n")
	writeCounts(w, combined.Counts, combined.Total)
}

func writeCounts(w io.Writer, counts map[sentiment.Label]int, total int) {
	fmt.Fprintf(w, "  Total headlines: %d\n", total)
	fmt.Fprintf(w, "  Positive: %d\n", counts[sentiment.Positive])
	fmt.Fprintf(w, "  Neutral : %d\n", counts[sentiment.Neutral])
	fmt.Fprintf(w, "  Negative: %d\n", counts[sentiment.Negative])
}

// Summary renders the short digest used by the notifier.
func Summary(reports []SourceReport, combined Combined) string {
	var b strings.Builder
	b.WriteString("Headline sentiment\n")
	for _, r := range reports {
		if r.FetchErr != nil {
			fmt.Fprintf(&b, "%s: fetch failed\n", r.Source)
			continue
		}
		fmt.Fprintf(&b, "%s: %d positive / %d neutral / %d negative\n",
			r.Source,
			r.Counts[sentiment.Positive],
			r.Counts[sentiment.Neutral],
			r.Counts[sentiment.Negative])
	}
	fmt.Fprintf(&b, "Combined: %d positive / %d neutral / %d negative (%d total)",
		combined.Counts[sentiment.Positive],
		combined.Counts[sentiment.Neutral],
		combined.Counts[sentiment.Negative],
		combined.Total)
	return b.String()
}
