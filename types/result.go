package types

import "time"

// SummaryResult is the merged narrative produced by the progressive
// summarizer. SourceCount records how many articles contributed non-empty
// cleaned text.
type SummaryResult struct {
	Text        string `json:"text"`
	SourceCount int    `json:"source_count"`
}

// EventRecord is one date-bearing statement extracted from an article.
// NormalizedDate is nil when the raw date text could not be parsed; the
// record is kept but sorted into the undated bucket.
type EventRecord struct {
	RawDateText    string     `json:"raw_date_text"`
	NormalizedDate *time.Time `json:"normalized_date,omitempty"`
	Description    string     `json:"description"`
	SourceIndex    int        `json:"source_index"`
}

// Dated reports whether the record carries a normalized calendar date.
func (e EventRecord) Dated() bool {
	return e.NormalizedDate != nil
}

// Timeline is an ordered sequence of events: dated records ascending by
// NormalizedDate, then undated records in discovery order.
type Timeline struct {
	Events []EventRecord `json:"events"`
}

// PipelineResult is the immutable outcome of one synthesis run.
type PipelineResult struct {
	Topic        string        `json:"topic"`
	Summary      SummaryResult `json:"summary"`
	Timeline     Timeline      `json:"timeline"`
	Reliability  float64       `json:"reliability"`
	ArticleCount int           `json:"article_count"`
	GeneratedAt  time.Time     `json:"generated_at"`
}
