// Package app wires the pipeline together: collect → analyze → aggregate →
// report. Every stage failure is absorbed so the run always produces
// whatever report the collected data allows.
package app

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/naz445/news-sentiment/internal/chart"
	"github.com/naz445/news-sentiment/internal/collector"
	"github.com/naz445/news-sentiment/internal/config"
	"github.com/naz445/news-sentiment/internal/lexicon"
	"github.com/naz445/news-sentiment/internal/logger"
	"github.com/naz445/news-sentiment/internal/metrics"
	"github.com/naz445/news-sentiment/internal/ratelimit"
	"github.com/naz445/news-sentiment/internal/report"
	"github.com/naz445/news-sentiment/internal/retry"
	"github.com/naz445/news-sentiment/internal/sentiment"
	"github.com/naz445/news-sentiment/internal/telegram"
)

// Run executes one full pipeline pass. It never aborts the process:
// per-source failures become empty reports and the run still exits 0.
func Run() {
	logger.Init()

	start := time.Now()
	defer func() {
		metrics.Global.RecordProcessingTime(time.Since(start))
		metrics.Global.SetLastRun()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		metrics.Global.SetError(err.Error())
		return
	}
	if cfg.Debug {
		logger.Debug("configuration loaded",
			"sources", cfg.SourcesPath,
			"lexicon", cfg.LexiconPath,
			"max_headlines", cfg.MaxHeadlines,
			"timeout", cfg.RequestTimeout)
	}

	lex, err := lexicon.Load(cfg.LexiconPath)
	if err != nil {
		logger.Warn("lexicon file not loaded, using built-in table",
			"path", cfg.LexiconPath, "error", err)
		lex = lexicon.Default()
	}
	logger.Debug("lexicon ready", "keywords", lex.Size())

	sources, err := collector.LoadSources(cfg.SourcesPath)
	if err != nil {
		logger.Error("cannot load sources", "path", cfg.SourcesPath, "error", err)
		metrics.Global.SetError(err.Error())
		return
	}

	client := &http.Client{Timeout: cfg.RequestTimeout}
	col := collector.New(client, ratelimit.New(cfg.FetchInterval), cfg.MaxHeadlines)

	ctx := context.Background()
	batches := make([]report.SourceBatch, 0, len(sources))
	for _, src := range sources {
		res := col.Collect(ctx, src)
		if res.Err != nil {
			logger.Error("source collection failed", "source", src.Name, "error", res.Err)
			metrics.Global.IncrementFetchErrors()
			batches = append(batches, report.SourceBatch{Source: src.Name, Err: res.Err})
			continue
		}
		logger.Info("collected headlines", "source", src.Name, "count", len(res.Headlines))
		metrics.Global.AddHeadlinesCollected(len(res.Headlines))

		headlines := make([]sentiment.Headline, 0, len(res.Headlines))
		for _, raw := range res.Headlines {
			headlines = append(headlines, sentiment.Analyze(lex, src.Name, raw))
		}
		batches = append(batches, report.SourceBatch{Source: src.Name, Headlines: headlines})
	}

	reports, combined := report.Aggregate(batches)
	report.Render(os.Stdout, batches, reports, combined)

	if cfg.ChartPath != "" {
		if err := chart.RenderFile(cfg.ChartPath, combined); err != nil {
			logger.Warn("chart rendering skipped", "path", cfg.ChartPath, "error", err)
		} else {
			logger.Info("chart written", "path", cfg.ChartPath)
			metrics.Global.IncrementChartsRendered()
		}
	}

	if cfg.TelegramToken != "" && cfg.TelegramChatID != "" {
		notifier := telegram.New(cfg.TelegramToken, cfg.TelegramChatID, client)
		summary := report.Summary(reports, combined)
		err := retry.Do(ctx, retry.Config{
			MaxAttempts: cfg.NotifyAttempts,
			Delay:       cfg.NotifyDelay,
			Backoff:     true,
		}, func() error {
			return notifier.Send(ctx, summary)
		})
		if err != nil {
			logger.Error("summary notification failed", "error", err)
		} else {
			logger.Info("summary sent to Telegram")
			metrics.Global.IncrementNotificationsSent()
		}
	}
}
