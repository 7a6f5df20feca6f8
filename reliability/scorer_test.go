package reliability

import (
	"math"
	"testing"

	"newslens/types"
)

func withCounts(counts ...int) []types.CleanedArticle {
	articles := make([]types.CleanedArticle, len(counts))
	for i, c := range counts {
		articles[i] = types.CleanedArticle{WordCount: c}
	}
	return articles
}

func TestScoreEmptySet(t *testing.T) {
	s := New(Config{})
	if got := s.Score(nil); got != 0.0 {
		t.Errorf("Score(nil) = %v, want 0.0", got)
	}
	if got := s.Score([]types.CleanedArticle{}); got != 0.0 {
		t.Errorf("Score(empty) = %v, want 0.0", got)
	}
}

func TestScoreClipsAtEndpoints(t *testing.T) {
	s := New(Config{WordCountFloor: 50, WordCountCeiling: 1000})

	if got := s.Score(withCounts(10, 20, 30)); got != 0.0 {
		t.Errorf("Score below floor = %v, want 0.0", got)
	}
	if got := s.Score(withCounts(50)); got != 0.0 {
		t.Errorf("Score at floor = %v, want 0.0", got)
	}
	if got := s.Score(withCounts(5000)); got != 1.0 {
		t.Errorf("Score above ceiling = %v, want 1.0", got)
	}
	if got := s.Score(withCounts(1000)); got != 1.0 {
		t.Errorf("Score at ceiling = %v, want 1.0", got)
	}
}

func TestScoreLinearRamp(t *testing.T) {
	s := New(Config{WordCountFloor: 50, WordCountCeiling: 1000})

	// Mean of {50, 500, 1000} is 516.67; (516.67-50)/950 = 0.4912.
	got := s.Score(withCounts(50, 500, 1000))
	want := (1550.0/3.0 - 50.0) / 950.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", got, want)
	}
	if got <= 0.0 || got >= 1.0 {
		t.Errorf("Score = %v, want strictly inside (0,1)", got)
	}
}

func TestScoreDefaults(t *testing.T) {
	s := New(Config{})

	// Defaults are floor 50, ceiling 1000; midpoint 525 maps to 0.5.
	got := s.Score(withCounts(525))
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Score(mean 525) = %v, want 0.5", got)
	}
}
