// Package fetcher retrieves topic-scoped articles from Google News RSS.
// It performs no cleaning or filtering; the pipeline owns all normalization.
package fetcher

import (
	"context"
	"fmt"
	"net/url"

	"newslens/config"
	"newslens/types"

	"github.com/mmcdole/gofeed"
)

const searchURL = "https://news.google.com/rss/search?q="

// Source is the minimal fetch contract the cache wrapper composes over.
type Source interface {
	Fetch(ctx context.Context, topic string) ([]types.Article, error)
}

// GoogleNews fetches articles from the Google News RSS search feed.
type GoogleNews struct {
	parser      *gofeed.Parser
	maxArticles int

	// searchURL is overridable in tests.
	searchURL string
}

// NewGoogleNews builds a fetcher returning at most maxArticles items per
// topic (the package default when maxArticles is not positive).
func NewGoogleNews(maxArticles int) *GoogleNews {
	if maxArticles <= 0 {
		maxArticles = config.DefaultMaxArticles
	}
	return &GoogleNews{
		parser:      gofeed.NewParser(),
		maxArticles: maxArticles,
		searchURL:   searchURL,
	}
}

// Fetch retrieves and parses the topic feed. A transport or parse failure
// is returned as-is; zero matching items is a valid empty result.
func (f *GoogleNews) Fetch(ctx context.Context, topic string) ([]types.Article, error) {
	feedURL := f.searchURL + url.QueryEscape(topic)

	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := min(len(feed.Items), f.maxArticles)
	articles := make([]types.Article, 0, count)

	for i := 0; i < count; i++ {
		item := feed.Items[i]

		description := item.Description
		if description == "" {
			description = item.Content
		}

		articles = append(articles, types.Article{
			Title:       item.Title,
			Description: description,
			Link:        item.Link,
			Source:      sourceName(item.Link),
		})
	}

	return articles, nil
}

// sourceName derives a publisher name from the article link host.
func sourceName(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return "Unknown"
	}
	return u.Host
}
