// Package timeline turns cleaned article texts into a chronologically
// ordered sequence of dated events. Date-bearing sentences are found by a
// recognizer, normalized against the run's reference instant, deduplicated,
// and sorted; events whose dates cannot be parsed are kept in an undated
// bucket after the dated records.
package timeline

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"newslens/config"
	"newslens/sentence"
	"newslens/types"
)

// Config bounds extraction. Zero fields fall back to package defaults.
type Config struct {
	DedupSimilarityThreshold float64
}

func (c Config) withDefaults() Config {
	if c.DedupSimilarityThreshold <= 0 {
		c.DedupSimilarityThreshold = config.DefaultDedupSimilarityThreshold
	}
	return c
}

// Extractor builds timelines from cleaned articles.
type Extractor struct {
	recognizer Recognizer
	normalizer Normalizer
	cfg        Config
}

// New constructs an Extractor around the given recognizer and normalizer.
func New(recognizer Recognizer, normalizer Normalizer, cfg Config) *Extractor {
	return &Extractor{
		recognizer: recognizer,
		normalizer: normalizer,
		cfg:        cfg.withDefaults(),
	}
}

// Extract scans every cleaned article for date-bearing sentences and
// returns the deduplicated, ordered timeline. Zero recognized dates yield
// an empty timeline, not an error. If ctx is canceled mid-scan, the events
// discovered so far are deduplicated, ordered, and returned.
func (e *Extractor) Extract(ctx context.Context, articles []types.CleanedArticle, ref time.Time) types.Timeline {
	discovered := []types.EventRecord{}

scan:
	for i, article := range articles {
		if err := ctx.Err(); err != nil {
			log.Printf("timeline: extraction canceled after %d/%d articles", i, len(articles))
			break scan
		}
		discovered = append(discovered, e.extractFromArticle(i, article, ref)...)
	}

	events := e.dedupe(discovered)
	orderEvents(events)
	return types.Timeline{Events: events}
}

func (e *Extractor) extractFromArticle(index int, article types.CleanedArticle, ref time.Time) []types.EventRecord {
	var records []types.EventRecord

	for _, sent := range sentence.Split(article.Text) {
		if len(strings.Fields(sent)) < config.MinEventSentenceWords {
			continue
		}

		for _, entity := range e.recognizer.ExtractDateEntities(sent) {
			if entity.Label != types.LabelDate && entity.Label != types.LabelEvent {
				continue
			}

			// The feed often repeats the headline inside the description;
			// strip it so the event reads as a statement, not a citation.
			description := strings.TrimSpace(strings.ReplaceAll(sent, article.Article.Title, ""))
			if description == "" {
				continue
			}

			record := types.EventRecord{
				RawDateText: entity.Span,
				Description: description,
				SourceIndex: index,
			}
			if t, ok := e.normalizer.Parse(entity.Span, ref); ok {
				record.NormalizedDate = &t
			}
			records = append(records, record)
		}
	}

	return records
}

// dedupe keeps the first occurrence of each (date, near-equal description)
// pair, in discovery order.
func (e *Extractor) dedupe(discovered []types.EventRecord) []types.EventRecord {
	kept := []types.EventRecord{}

	for _, candidate := range discovered {
		duplicate := false
		for _, existing := range kept {
			if !sameDate(candidate, existing) {
				continue
			}
			if descriptionSimilarity(candidate.Description, existing.Description) >= e.cfg.DedupSimilarityThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, candidate)
		}
	}

	return kept
}

func sameDate(a, b types.EventRecord) bool {
	if a.NormalizedDate == nil || b.NormalizedDate == nil {
		return a.NormalizedDate == nil && b.NormalizedDate == nil
	}
	return a.NormalizedDate.Equal(*b.NormalizedDate)
}

// descriptionSimilarity scores two event descriptions in [0,1]. Case and
// whitespace differences never count against equality; beyond that, the
// score is token overlap over the smaller token set.
func descriptionSimilarity(a, b string) float64 {
	na, nb := foldDescription(a), foldDescription(b)
	if na == nb {
		return 1.0
	}

	tokensA := tokenSet(na)
	tokensB := tokenSet(nb)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	smaller := tokensA
	if len(tokensB) < len(tokensA) {
		smaller = tokensB
	}

	shared := 0
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(smaller))
}

func foldDescription(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Fields(s) {
		set[token] = struct{}{}
	}
	return set
}

// orderEvents sorts dated records ascending by date, stable within a date,
// and leaves undated records after all dated ones in discovery order.
func orderEvents(events []types.EventRecord) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		switch {
		case a.Dated() && b.Dated():
			return a.NormalizedDate.Before(*b.NormalizedDate)
		case a.Dated():
			return true
		default:
			return false
		}
	})
}
