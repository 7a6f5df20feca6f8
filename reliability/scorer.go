// Package reliability computes a bounded heuristic for source depth. The
// score is a proxy derived purely from article length statistics; it says
// nothing about factual correctness.
package reliability

import (
	"newslens/config"
	"newslens/types"
)

// Config sets the word-count endpoints of the normalization ramp. Zero
// fields fall back to package defaults.
type Config struct {
	WordCountFloor   int
	WordCountCeiling int
}

func (c Config) withDefaults() Config {
	if c.WordCountFloor <= 0 {
		c.WordCountFloor = config.DefaultWordCountFloor
	}
	if c.WordCountCeiling <= c.WordCountFloor {
		c.WordCountCeiling = config.DefaultWordCountCeiling
	}
	return c
}

// Scorer maps mean article word count into [0,1].
type Scorer struct {
	cfg Config
}

// New constructs a Scorer.
func New(cfg Config) *Scorer {
	return &Scorer{cfg: cfg.withDefaults()}
}

// Score returns the reliability estimate for the article set: the mean
// word count mapped linearly from WordCountFloor (0.0) to WordCountCeiling
// (1.0), clipped at both ends. An empty set scores exactly 0.0.
//
// A single very long article can inflate the mean for many short ones;
// the heuristic knowingly ignores distribution shape.
func (s *Scorer) Score(articles []types.CleanedArticle) float64 {
	if len(articles) == 0 {
		return 0.0
	}

	total := 0
	for _, a := range articles {
		total += a.WordCount
	}
	mean := float64(total) / float64(len(articles))

	floor := float64(s.cfg.WordCountFloor)
	ceiling := float64(s.cfg.WordCountCeiling)

	switch {
	case mean <= floor:
		return 0.0
	case mean >= ceiling:
		return 1.0
	default:
		return (mean - floor) / (ceiling - floor)
	}
}
