// Package orchestrator sequences one synthesis run over a fetched article
// set: Idle → Fetching → Cleaning → Synthesizing → Done, with Failed
// reachable only from Fetching. Component-internal degradation is absorbed
// by each component's fallback policy and never aborts a run.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"newslens/cleaner"
	"newslens/models"
	"newslens/reliability"
	"newslens/summarizer"
	"newslens/timeline"
	"newslens/types"
)

// Fetcher is the external article retrieval collaborator. It must not
// perform cleaning or filtering.
type Fetcher interface {
	Fetch(ctx context.Context, topic string) ([]types.Article, error)
}

// FetchError is the only run-fatal failure: the fetch collaborator itself
// failed at the transport level. Zero fetched articles is not a FetchError.
type FetchError struct {
	Topic string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch articles for %q: %v", e.Topic, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Options tune one run. Every field has a default; callers override any
// subset by setting non-zero values.
type Options struct {
	MaxSummaryLength               int     `json:"max_summary_length"`
	MaxChunkLength                 int     `json:"max_chunk_length"`
	MinInputLengthForSummarization int     `json:"min_input_length_for_summarization"`
	WordCountFloor                 int     `json:"word_count_floor"`
	WordCountCeiling               int     `json:"word_count_ceiling"`
	DedupSimilarityThreshold       float64 `json:"dedup_similarity_threshold"`
}

// Orchestrator owns the partial-failure policy and assembles the final
// PipelineResult. One Orchestrator serves sequential run requests; the
// model provider behind it is shared, read-only state.
type Orchestrator struct {
	fetcher  Fetcher
	provider *models.Provider
	cleaner  *cleaner.Cleaner
	tracker  *tracker
}

// New wires an Orchestrator from its collaborators.
func New(fetcher Fetcher, provider *models.Provider) *Orchestrator {
	return &Orchestrator{
		fetcher:  fetcher,
		provider: provider,
		cleaner:  cleaner.New(),
		tracker:  newTracker(),
	}
}

// Status reports the current state and recent log lines.
func (o *Orchestrator) Status() StatusSnapshot {
	return o.tracker.snapshot()
}

// Run executes one synthesis pipeline for the topic. Only a fetch-level
// transport failure is returned as an error; every other degradation
// yields a well-formed PipelineResult. Cancellation of ctx during
// Fetching fails the run; cancellation during Synthesizing returns the
// best-available partial result.
func (o *Orchestrator) Run(ctx context.Context, topic string, opts Options) (*types.PipelineResult, error) {
	start := time.Now()

	o.tracker.setState(StateFetching)
	log.Printf("orchestrator: fetching articles for topic %q", topic)

	articles, err := o.fetcher.Fetch(ctx, topic)
	if err != nil {
		fetchErr := &FetchError{Topic: topic, Err: err}
		o.tracker.setFailed(fetchErr)
		return nil, fetchErr
	}
	o.tracker.addLog(fmt.Sprintf("fetched %d articles", len(articles)))

	// Cleaning is total: it cannot fail for any input, including an empty
	// article list, so the next two transitions are unconditional.
	o.tracker.setState(StateCleaning)
	cleaned := o.cleaner.CleanAll(articles)

	o.tracker.setState(StateSynthesizing)
	result := o.synthesize(ctx, topic, cleaned, start, opts)

	o.tracker.setState(StateDone)
	log.Printf("orchestrator: run complete for topic %q (%d articles, %d events)",
		topic, result.ArticleCount, len(result.Timeline.Events))
	return result, nil
}

// synthesize fans the cleaned set out to the three independent synthesis
// components and merges their outputs. None reads another's output, so the
// merge does not depend on their relative timing.
func (o *Orchestrator) synthesize(ctx context.Context, topic string, cleaned []types.CleanedArticle, start time.Time, opts Options) *types.PipelineResult {
	summ := summarizer.New(o.provider.Summarization(), summarizer.Config{
		MaxChunkLength:   opts.MaxChunkLength,
		MaxSummaryLength: opts.MaxSummaryLength,
		MinInputLength:   opts.MinInputLengthForSummarization,
	})
	extractor := timeline.New(o.provider.Recognizer(), o.provider.Dates(), timeline.Config{
		DedupSimilarityThreshold: opts.DedupSimilarityThreshold,
	})
	scorer := reliability.New(reliability.Config{
		WordCountFloor:   opts.WordCountFloor,
		WordCountCeiling: opts.WordCountCeiling,
	})

	var (
		summary types.SummaryResult
		events  types.Timeline
		score   float64
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		summary = summ.Summarize(ctx, cleaned)
	}()
	go func() {
		defer wg.Done()
		events = extractor.Extract(ctx, cleaned, start)
	}()
	go func() {
		defer wg.Done()
		score = scorer.Score(cleaned)
	}()
	wg.Wait()

	return &types.PipelineResult{
		Topic:        topic,
		Summary:      summary,
		Timeline:     events,
		Reliability:  score,
		ArticleCount: len(cleaned),
		GeneratedAt:  time.Now(),
	}
}
