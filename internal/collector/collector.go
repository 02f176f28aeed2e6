// Package collector is the external-I/O boundary: it fetches each
// configured source and extracts its headline strings. Failures are
// returned as values per source, never fatal to the run.
package collector

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"gopkg.in/yaml.v3"

	"github.com/naz445/news-sentiment/internal/logger"
	"github.com/naz445/news-sentiment/internal/metrics"
	"github.com/naz445/news-sentiment/internal/ratelimit"
	"github.com/naz445/news-sentiment/internal/rss"
	"github.com/naz445/news-sentiment/internal/sentiment"
)

const userAgent = "Mozilla/5.0 (compatible; newssent/1.0)"

// Source is one configured news outlet.
type Source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Selector string `yaml:"selector"`
	Feed     string `yaml:"feed,omitempty"`
}

// sourcesConfig is the YAML config structure:
//
//	sources:
//	  - name: BBC News
//	    url: https://www.bbc.com/news
//	    selector: h3
type sourcesConfig struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads the source list from a YAML file.
func LoadSources(path string) ([]Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg sourcesConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode sources %s: %w", path, err)
	}
	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("sources %s defines no sources", path)
	}
	for _, s := range cfg.Sources {
		if s.Name == "" || s.URL == "" {
			return nil, fmt.Errorf("sources %s: every source needs a name and url", path)
		}
	}
	return cfg.Sources, nil
}

// Result is the outcome of collecting one source. A fetch or parse failure
// is carried in Err and the source is treated as empty downstream.
type Result struct {
	Source    Source
	Headlines []string
	Err       error
}

// Collector fetches sources sequentially, pacing outbound requests.
type Collector struct {
	client *http.Client
	pacer  *ratelimit.Pacer
	limit  int
}

func New(client *http.Client, pacer *ratelimit.Pacer, limit int) *Collector {
	return &Collector{client: client, pacer: pacer, limit: limit}
}

// Collect fetches one source and extracts up to the configured number of
// unique headlines in document order. When the selector matches nothing and
// the source declares a feed URL, titles come from the feed instead.
func (c *Collector) Collect(ctx context.Context, src Source) Result {
	if err := c.pacer.Wait(ctx); err != nil {
		return Result{Source: src, Err: err}
	}

	headlines, err := c.extract(ctx, src)
	if err == nil && len(headlines) == 0 && src.Feed != "" {
		logger.Warn("no headlines matched selector, trying feed",
			"source", src.Name, "feed", src.Feed)
		headlines, err = c.fromFeed(ctx, src)
	}
	if err != nil {
		return Result{Source: src, Err: err}
	}
	return Result{Source: src, Headlines: headlines}
}

func (c *Collector) extract(ctx context.Context, src Source) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: status %d", src.URL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src.URL, err)
	}

	selector := src.Selector
	if selector == "" {
		selector = "h3"
	}

	var headlines []string
	seen := map[string]bool{}
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return true
		}
		key := sentiment.Normalize(text)
		if seen[key] {
			metrics.Global.IncrementDuplicatesFiltered()
			return true
		}
		seen[key] = true
		headlines = append(headlines, text)
		return len(headlines) < c.limit
	})
	return headlines, nil
}

func (c *Collector) fromFeed(ctx context.Context, src Source) ([]string, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	titles, err := rss.FetchTitles(ctx, c.client, src.Feed)
	if err != nil {
		return nil, err
	}

	var headlines []string
	seen := map[string]bool{}
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		key := sentiment.Normalize(title)
		if seen[key] {
			metrics.Global.IncrementDuplicatesFiltered()
			continue
		}
		seen[key] = true
		headlines = append(headlines, title)
		if len(headlines) >= c.limit {
			break
		}
	}
	return headlines, nil
}
