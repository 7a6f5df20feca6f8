// Package cleaner normalizes raw article bodies into plain text the
// downstream synthesis stages can rely on. Cleaning is a pure, total
// function: every string input, including the empty string, yields a
// well-defined CleanedArticle.
package cleaner

import (
	"regexp"
	"strings"

	"newslens/config"
	"newslens/types"
)

var (
	tagRe = regexp.MustCompile(`<[^>]*>`)
	wsRe  = regexp.MustCompile(`\s+`)
)

// fallbackRule is one entry in the cleaner's fallback policy table:
// when the condition holds for the normalized text, apply replaces it.
type fallbackRule struct {
	name  string
	when  func(article types.Article, text string) bool
	apply func(article types.Article, text string) string
}

// fallbackPolicy is evaluated in order after normalization; the first
// matching rule wins.
var fallbackPolicy = []fallbackRule{
	{
		name: "short-content-title-fallback",
		when: func(_ types.Article, text string) bool {
			return len(text) < config.MinContentLength
		},
		apply: func(article types.Article, text string) string {
			title := Normalize(article.Title)
			if text == "" {
				return title
			}
			return strings.TrimSpace(title + " " + text)
		},
	},
}

// Cleaner strips markup and noise from article descriptions and applies
// the short-content fallback policy.
type Cleaner struct{}

// New returns a Cleaner.
func New() *Cleaner {
	return &Cleaner{}
}

// Clean derives the CleanedArticle for one Article.
func (c *Cleaner) Clean(article types.Article) types.CleanedArticle {
	text := Normalize(article.Description)

	for _, rule := range fallbackPolicy {
		if rule.when(article, text) {
			text = rule.apply(article, text)
			break
		}
	}

	return types.CleanedArticle{
		Article:   article,
		Text:      text,
		WordCount: countWords(text),
	}
}

// CleanAll cleans every article in order, one output per input.
func (c *Cleaner) CleanAll(articles []types.Article) []types.CleanedArticle {
	cleaned := make([]types.CleanedArticle, len(articles))
	for i, article := range articles {
		cleaned[i] = c.Clean(article)
	}
	return cleaned
}

// Normalize strips markup tags and collapses runs of whitespace.
// Normalize is idempotent: applying it to already normalized text
// returns the same text.
func Normalize(raw string) string {
	text := tagRe.ReplaceAllString(raw, " ")
	text = wsRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func countWords(text string) int {
	if text == "" {
		return 0
	}
	return len(strings.Fields(text))
}
