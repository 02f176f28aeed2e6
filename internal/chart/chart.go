// Package chart renders the combined label counts as a bar chart image.
// Rendering is best-effort: any failure here must not touch the text report.
package chart

import (
	"fmt"
	"io"
	"os"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/naz445/news-sentiment/internal/report"
	"github.com/naz445/news-sentiment/internal/sentiment"
)

// Render draws one bar per label (height = combined count) as a PNG.
func Render(w io.Writer, combined report.Combined) error {
	if combined.Total == 0 {
		return fmt.Errorf("no classified headlines to chart")
	}

	bars := make([]gochart.Value, 0, len(sentiment.Labels))
	for _, label := range sentiment.Labels {
		bars = append(bars, gochart.Value{
			Label: string(label),
			Value: float64(combined.Counts[label]),
		})
	}

	graph := gochart.BarChart{
		Title:    "Headline sentiment (combined)",
		Width:    512,
		Height:   512,
		BarWidth: 60,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
		Bars: bars,
	}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// RenderFile writes the chart PNG to path.
func RenderFile(path string, combined report.Combined) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Render(f, combined)
}
