package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"newslens/types"
)

// fakeModel records calls and answers with a configurable function.
type fakeModel struct {
	calls     []string
	summarize func(text string) (string, error)
}

func (f *fakeModel) Summarize(_ context.Context, text string, _ int) (string, error) {
	f.calls = append(f.calls, text)
	if f.summarize == nil {
		return "summary of input", nil
	}
	return f.summarize(text)
}

func cleanedFrom(texts ...string) []types.CleanedArticle {
	out := make([]types.CleanedArticle, len(texts))
	for i, text := range texts {
		out[i] = types.CleanedArticle{Text: text, WordCount: len(strings.Fields(text))}
	}
	return out
}

func TestSummarizeEmptySet(t *testing.T) {
	model := &fakeModel{}
	s := New(model, Config{})

	result := s.Summarize(context.Background(), nil)

	if result.Text != "" {
		t.Errorf("expected empty text, got %q", result.Text)
	}
	if result.SourceCount != 0 {
		t.Errorf("expected source count 0, got %d", result.SourceCount)
	}
	if len(model.calls) != 0 {
		t.Errorf("expected no model calls, got %d", len(model.calls))
	}
}

func TestSummarizeUnderMinInputSkipsModel(t *testing.T) {
	model := &fakeModel{}
	s := New(model, Config{MinInputLength: 200})

	result := s.Summarize(context.Background(), cleanedFrom(
		"UN climate summit opens",
		"Leaders gather in Geneva",
	))

	if len(model.calls) != 0 {
		t.Fatalf("expected model to be skipped for short input, got %d calls", len(model.calls))
	}
	want := "UN climate summit opens Leaders gather in Geneva"
	if result.Text != want {
		t.Errorf("expected concatenation fallback %q, got %q", want, result.Text)
	}
	if result.SourceCount != 2 {
		t.Errorf("expected source count 2, got %d", result.SourceCount)
	}
}

func TestSummarizeTwoPassReduction(t *testing.T) {
	model := &fakeModel{summarize: func(text string) (string, error) {
		return "condensed", nil
	}}
	s := New(model, Config{MinInputLength: 10, MaxChunkLength: 5000})

	long := strings.Repeat("The negotiations continued through the night. ", 10)
	result := s.Summarize(context.Background(), cleanedFrom(long, long))

	// Both articles fit under the chunk limit, so only the merge pass runs.
	if len(model.calls) != 1 {
		t.Fatalf("expected exactly one merge call, got %d", len(model.calls))
	}
	if result.Text != "condensed" {
		t.Errorf("expected merged model output, got %q", result.Text)
	}
	if result.SourceCount != 2 {
		t.Errorf("expected source count 2, got %d", result.SourceCount)
	}
}

func TestSummarizeChunksLongArticles(t *testing.T) {
	model := &fakeModel{summarize: func(text string) (string, error) {
		return "piece", nil
	}}
	s := New(model, Config{MinInputLength: 10, MaxChunkLength: 120})

	long := strings.Repeat("Shelling was reported near the eastern front on Tuesday. ", 8)
	s.Summarize(context.Background(), cleanedFrom(long))

	// Pass 1 must fire at least twice for an article several times the
	// chunk limit, plus the final merge pass.
	if len(model.calls) < 3 {
		t.Errorf("expected chunked pass-1 calls plus merge, got %d calls", len(model.calls))
	}
}

func TestSummarizeModelFailureFallsBack(t *testing.T) {
	model := &fakeModel{summarize: func(string) (string, error) {
		return "", errors.New("model unavailable")
	}}
	s := New(model, Config{MinInputLength: 10, MaxChunkLength: 5000})

	texts := []string{
		"Aid convoys reached the border city after weeks of delay.",
		"Officials promised an independent review of the incident.",
	}
	result := s.Summarize(context.Background(), cleanedFrom(texts...))

	want := strings.Join(texts, " ")
	if result.Text != want {
		t.Errorf("expected pre-pass input fallback %q, got %q", want, result.Text)
	}
}

func TestSummarizeEmptyModelOutputFallsBack(t *testing.T) {
	model := &fakeModel{summarize: func(string) (string, error) {
		return "   ", nil
	}}
	s := New(model, Config{MinInputLength: 10, MaxChunkLength: 5000})

	result := s.Summarize(context.Background(), cleanedFrom("The ministry published its final report on Thursday morning."))

	if result.Text == "" {
		t.Error("expected non-empty fallback text for non-empty input")
	}
}

func TestSummarizeLengthBound(t *testing.T) {
	model := &fakeModel{summarize: func(string) (string, error) {
		return strings.Repeat("overflowing model output ", 100), nil
	}}
	s := New(model, Config{MinInputLength: 10, MaxChunkLength: 5000, MaxSummaryLength: 80})

	result := s.Summarize(context.Background(), cleanedFrom(
		"A lengthy account of the events leading up to the agreement and its aftermath.",
	))

	if got := utf8.RuneCountInString(result.Text); got > 80 {
		t.Errorf("summary exceeds MaxSummaryLength: %d runes", got)
	}
	if result.Text == "" {
		t.Error("expected non-empty truncated summary")
	}
}

func TestSummarizeSkipsEmptyCleanedText(t *testing.T) {
	model := &fakeModel{}
	s := New(model, Config{MinInputLength: 10_000})

	result := s.Summarize(context.Background(), []types.CleanedArticle{
		{Text: ""},
		{Text: "   "},
		{Text: "Only this article carries content."},
	})

	if result.SourceCount != 1 {
		t.Errorf("expected source count 1, got %d", result.SourceCount)
	}
}

func TestSummarizeCanceledContextUsesFallback(t *testing.T) {
	model := &fakeModel{}
	s := New(model, Config{MinInputLength: 10, MaxChunkLength: 5000})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	text := "The inquiry heard testimony from a dozen witnesses over two days."
	result := s.Summarize(ctx, cleanedFrom(text))

	if len(model.calls) != 0 {
		t.Errorf("expected no model calls after cancellation, got %d", len(model.calls))
	}
	if result.Text != text {
		t.Errorf("expected pre-pass input as best-available result, got %q", result.Text)
	}
}
