// Package rss fetches headline titles from a news feed. Used as a fallback
// when selector extraction from a source's homepage yields nothing.
package rss

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mmcdole/gofeed"
)

// FetchTitles downloads one feed and returns its item titles in feed order.
func FetchTitles(ctx context.Context, client *http.Client, url string) ([]string, error) {
	parser := gofeed.NewParser()
	if client != nil {
		parser.Client = client
	}

	feed, err := parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", url, err)
	}

	titles := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		titles = append(titles, item.Title)
	}
	return titles, nil
}
