// Package models holds the process-wide model handles. The underlying
// summarization client and recognizer are expensive to set up, so one
// Provider is shared across runs: initialization is lazy, happens exactly
// once even under concurrent first use, and the handles are read-only
// afterwards.
package models

import (
	"context"
	"errors"
	"os"
	"sync"

	"newslens/summarizer"
	"newslens/timeline"
)

// Options overrides individual model handles, primarily for test doubles.
// Any nil field gets the process default on first use.
type Options struct {
	Summarization summarizer.Model
	Recognizer    timeline.Recognizer
	Dates         timeline.Normalizer

	// CohereAPIKey overrides the COHERE_API_KEY environment variable for
	// the default summarization model.
	CohereAPIKey string
}

// Provider hands out model handles with one-shot initialization.
type Provider struct {
	opts Options

	once          sync.Once
	summarization summarizer.Model
	recognizer    timeline.Recognizer
	dates         timeline.Normalizer
}

// NewProvider builds a Provider; no model is constructed until first use.
func NewProvider(opts Options) *Provider {
	return &Provider{opts: opts}
}

func (p *Provider) init() {
	p.once.Do(func() {
		p.summarization = p.opts.Summarization
		if p.summarization == nil {
			key := p.opts.CohereAPIKey
			if key == "" {
				key = os.Getenv("COHERE_API_KEY")
			}
			if key != "" {
				p.summarization = summarizer.NewCohereModel(key)
			} else {
				p.summarization = unavailableModel{}
			}
		}

		p.recognizer = p.opts.Recognizer
		if p.recognizer == nil {
			p.recognizer = timeline.NewHeuristicRecognizer()
		}

		p.dates = p.opts.Dates
		if p.dates == nil {
			p.dates = timeline.NewDateParser()
		}
	})
}

// Summarization returns the shared summarization model.
func (p *Provider) Summarization() summarizer.Model {
	p.init()
	return p.summarization
}

// Recognizer returns the shared date/event recognizer.
func (p *Provider) Recognizer() timeline.Recognizer {
	p.init()
	return p.recognizer
}

// Dates returns the shared date normalizer.
func (p *Provider) Dates() timeline.Normalizer {
	p.init()
	return p.dates
}

// unavailableModel stands in when no summarization backend is configured.
// Every call fails, which routes the summarizer onto its deterministic
// fallback text instead of crashing the pipeline.
type unavailableModel struct{}

func (unavailableModel) Summarize(context.Context, string, int) (string, error) {
	return "", errors.New("summarization model not configured")
}
