// Package summarizer reduces a set of cleaned article texts to one
// bounded-length narrative via a two-pass progressive reduction:
// long articles are summarized chunk by chunk, then the combined
// intermediate text is summarized once more into the final merge.
package summarizer

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"newslens/config"
	"newslens/sentence"
	"newslens/types"
)

// Model is the opaque summarization collaborator. Implementations may fail
// or return empty output; the summarizer absorbs both.
type Model interface {
	Summarize(ctx context.Context, text string, maxLength int) (string, error)
}

// fallbackReason enumerates the conditions under which the summarizer
// substitutes deterministic text for model output. Every fallback keeps the
// pre-pass input for the affected stage; failure is local, never fatal.
type fallbackReason string

const (
	// fallbackUnderMinInput: combined input too short to be worth a model call
	fallbackUnderMinInput fallbackReason = "under-min-input"
	// fallbackModelError: the model returned an error for this stage
	fallbackModelError fallbackReason = "model-error"
	// fallbackEmptyOutput: the model returned empty text for this stage
	fallbackEmptyOutput fallbackReason = "empty-output"
	// fallbackCanceled: the run's deadline fired before this stage
	fallbackCanceled fallbackReason = "canceled"
)

// Config bounds the reduction. Zero fields fall back to package defaults.
type Config struct {
	MaxChunkLength   int
	MaxSummaryLength int
	MinInputLength   int
}

func (c Config) withDefaults() Config {
	if c.MaxChunkLength <= 0 {
		c.MaxChunkLength = config.DefaultMaxChunkLength
	}
	if c.MaxSummaryLength <= 0 {
		c.MaxSummaryLength = config.DefaultMaxSummaryLength
	}
	if c.MinInputLength <= 0 {
		c.MinInputLength = config.DefaultMinInputLength
	}
	return c
}

// Summarizer performs the progressive reduction. The chunking and merging
// logic is deterministic given the same model outputs.
type Summarizer struct {
	model Model
	cfg   Config
}

// New constructs a Summarizer around the given model.
func New(model Model, cfg Config) *Summarizer {
	return &Summarizer{model: model, cfg: cfg.withDefaults()}
}

// Summarize reduces the cleaned articles to one SummaryResult. The output
// text never exceeds MaxSummaryLength and is non-empty whenever at least
// one article contributed non-empty cleaned text.
func (s *Summarizer) Summarize(ctx context.Context, articles []types.CleanedArticle) types.SummaryResult {
	texts := make([]string, 0, len(articles))
	for _, a := range articles {
		if strings.TrimSpace(a.Text) == "" {
			continue
		}
		texts = append(texts, a.Text)
	}

	if len(texts) == 0 {
		return types.SummaryResult{Text: "", SourceCount: 0}
	}

	combined := strings.Join(texts, " ")
	if utf8.RuneCountInString(combined) < s.cfg.MinInputLength {
		logFallback("pass1", fallbackUnderMinInput)
		return types.SummaryResult{
			Text:        truncate(combined, s.cfg.MaxSummaryLength),
			SourceCount: len(texts),
		}
	}

	// Pass 1: per-article reduction. Articles over the chunk limit are split
	// on sentence boundaries and summarized piecewise.
	intermediate := make([]string, 0, len(texts))
	for _, text := range texts {
		if len(text) <= s.cfg.MaxChunkLength {
			intermediate = append(intermediate, text)
			continue
		}
		for _, chunk := range sentence.Chunk(text, s.cfg.MaxChunkLength) {
			intermediate = append(intermediate, s.summarizeStage(ctx, "pass1", chunk))
		}
	}

	// Pass 2: merge everything into the final narrative.
	merged := strings.Join(intermediate, " ")
	final := s.summarizeStage(ctx, "pass2", merged)

	return types.SummaryResult{
		Text:        truncate(final, s.cfg.MaxSummaryLength),
		SourceCount: len(texts),
	}
}

// summarizeStage invokes the model for one stage and applies the fallback
// policy: on cancellation, model error, or empty output the stage's input
// text is returned unchanged.
func (s *Summarizer) summarizeStage(ctx context.Context, stage string, text string) string {
	if err := ctx.Err(); err != nil {
		logFallback(stage, fallbackCanceled)
		return text
	}

	out, err := s.model.Summarize(ctx, text, s.cfg.MaxSummaryLength)
	if err != nil {
		logFallback(stage, fallbackModelError)
		return text
	}
	if strings.TrimSpace(out) == "" {
		logFallback(stage, fallbackEmptyOutput)
		return text
	}
	return strings.TrimSpace(out)
}

func logFallback(stage string, reason fallbackReason) {
	log.Printf("summarizer: %s fallback (%s)", stage, reason)
}

// truncate bounds text to max runes, cutting on a rune boundary.
func truncate(text string, max int) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:max]))
}
