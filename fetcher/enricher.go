package fetcher

import (
	"context"
	"log"
	"sync"
	"time"

	"newslens/types"

	readability "github.com/go-shiori/go-readability"
)

const (
	enricherWorkers = 5
	enricherTimeout = 30 * time.Second
)

// Enricher replaces thin RSS descriptions with the readable full text of
// the linked page. Enrichment is retrieval, not cleaning: the fetched text
// flows through the pipeline's normalization like any other description.
type Enricher struct {
	workers int
}

// NewEnricher builds an Enricher with the default worker count.
func NewEnricher() *Enricher {
	return &Enricher{workers: enricherWorkers}
}

// EnrichAll fetches full content for every article whose description is
// shorter than minLength, using a bounded worker pool. Extraction failures
// leave the original description in place.
func (e *Enricher) EnrichAll(ctx context.Context, articles []types.Article, minLength int) {
	var wg sync.WaitGroup
	indexChan := make(chan int, len(articles))

	for w := 0; w < e.workers; w++ {
		go func(workerID int) {
			for i := range indexChan {
				if err := ctx.Err(); err != nil {
					wg.Done()
					continue
				}
				if err := enrich(&articles[i]); err != nil {
					log.Printf("[Worker %d] Failed to enrich %s: %v", workerID, articles[i].Link, err)
				}
				wg.Done()
			}
		}(w)
	}

	for i := range articles {
		if len(articles[i].Description) >= minLength || articles[i].Link == "" {
			continue
		}
		wg.Add(1)
		indexChan <- i
	}

	wg.Wait()
	close(indexChan)
}

// Enriched composes a Source with post-fetch content enrichment.
type Enriched struct {
	source    Source
	enricher  *Enricher
	minLength int
}

// NewEnriched wraps source so thin descriptions (shorter than minLength)
// are replaced with extracted full text before the pipeline sees them.
func NewEnriched(source Source, minLength int) *Enriched {
	return &Enriched{
		source:    source,
		enricher:  NewEnricher(),
		minLength: minLength,
	}
}

// Fetch retrieves articles from the wrapped source and enriches them.
func (f *Enriched) Fetch(ctx context.Context, topic string) ([]types.Article, error) {
	articles, err := f.source.Fetch(ctx, topic)
	if err != nil {
		return nil, err
	}
	f.enricher.EnrichAll(ctx, articles, f.minLength)
	return articles, nil
}

func enrich(article *types.Article) error {
	extracted, err := readability.FromURL(article.Link, enricherTimeout)
	if err != nil {
		return err
	}
	if extracted.TextContent != "" {
		article.Description = extracted.TextContent
	}
	return nil
}
