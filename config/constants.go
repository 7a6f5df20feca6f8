package config

import (
	"os"
	"time"
)

// Summarization Constants
const (
	// DefaultMaxSummaryLength caps the final merged narrative in characters
	DefaultMaxSummaryLength = 1000

	// DefaultMaxChunkLength is the largest per-article text passed to the
	// model in one call; longer texts are split on sentence boundaries
	DefaultMaxChunkLength = 2000

	// DefaultMinInputLength is the combined input size below which the
	// summarization model is skipped in favor of the concatenation fallback
	DefaultMinInputLength = 200
)

// Scoring Constants
const (
	// DefaultWordCountFloor is the mean word count that maps to reliability 0.0
	DefaultWordCountFloor = 50

	// DefaultWordCountCeiling is the mean word count that maps to reliability 1.0
	DefaultWordCountCeiling = 1000
)

// Timeline Constants
const (
	// DefaultDedupSimilarityThreshold is the description similarity at or
	// above which two same-dated events are considered duplicates
	DefaultDedupSimilarityThreshold = 0.85

	// MinEventSentenceWords filters out fragments too short to describe an event
	MinEventSentenceWords = 5
)

// Cleaning Constants
const (
	// MinContentLength is the cleaned-text size in characters below which
	// the title fallback kicks in
	MinContentLength = 40
)

// Fetching Constants
const (
	// DefaultMaxArticles limits how many feed items one run ingests
	DefaultMaxArticles = 15

	// DefaultFetchCacheTTL bounds how long a topic's raw articles are reused
	// from the fetch cache
	DefaultFetchCacheTTL = 15 * time.Minute

	// DefaultEnrichThreshold is the description length in characters below
	// which the fetcher attempts full-content extraction
	DefaultEnrichThreshold = 200
)

// GetEnvOrDefault returns the environment variable value or a fallback.
func GetEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
