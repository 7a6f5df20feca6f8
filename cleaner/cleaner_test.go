package cleaner

import (
	"strings"
	"testing"

	"newslens/types"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips markup tags",
			input: "<p>Talks resumed <b>today</b> in Geneva.</p>",
			want:  "Talks resumed today in Geneva.",
		},
		{
			name:  "collapses whitespace runs",
			input: "Talks\n\nresumed\t today   in Geneva.",
			want:  "Talks resumed today in Geneva.",
		},
		{
			name:  "trims surrounding whitespace",
			input: "   Talks resumed.   ",
			want:  "Talks resumed.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "tags only",
			input: "<div><span></span></div>",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"<p>Ceasefire talks <i>stalled</i> on March 3, 2023.</p>",
		"plain text with   gaps",
		"",
		"already clean sentence.",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestCleanShortContentFallback(t *testing.T) {
	c := New()

	article := types.Article{
		Title:       "Summit reaches historic agreement",
		Description: "<p>short</p>",
		Source:      "example.com",
	}

	cleaned := c.Clean(article)

	if !strings.Contains(cleaned.Text, article.Title) {
		t.Errorf("expected fallback text to contain title %q, got %q", article.Title, cleaned.Text)
	}
	if !strings.Contains(cleaned.Text, "short") {
		t.Errorf("expected fallback text to keep remaining description, got %q", cleaned.Text)
	}
}

func TestCleanLongContentNoFallback(t *testing.T) {
	c := New()

	description := "Negotiators from both delegations met for a third consecutive day of talks in Geneva."
	cleaned := c.Clean(types.Article{
		Title:       "Talks continue",
		Description: description,
	})

	if cleaned.Text != description {
		t.Errorf("expected description to pass through unchanged, got %q", cleaned.Text)
	}
	if !strings.Contains(cleaned.Text, "Geneva") {
		t.Errorf("unexpected cleaned text %q", cleaned.Text)
	}
}

func TestCleanEmptyArticle(t *testing.T) {
	c := New()

	cleaned := c.Clean(types.Article{})

	if cleaned.Text != "" {
		t.Errorf("expected empty text for empty article, got %q", cleaned.Text)
	}
	if cleaned.WordCount != 0 {
		t.Errorf("expected word count 0, got %d", cleaned.WordCount)
	}
}

func TestCleanWordCount(t *testing.T) {
	c := New()

	cleaned := c.Clean(types.Article{
		Title:       "ignored",
		Description: "Officials confirmed the deal covers energy, trade, and several security provisions region-wide.",
	})

	if cleaned.WordCount != 12 {
		t.Errorf("expected word count 12, got %d", cleaned.WordCount)
	}
}

func TestCleanAllPreservesOrder(t *testing.T) {
	c := New()

	articles := []types.Article{
		{Title: "first title here", Description: strings.Repeat("alpha ", 20)},
		{Title: "second title here", Description: strings.Repeat("beta ", 20)},
	}

	cleaned := c.CleanAll(articles)

	if len(cleaned) != 2 {
		t.Fatalf("expected 2 cleaned articles, got %d", len(cleaned))
	}
	if !strings.Contains(cleaned[0].Text, "alpha") || !strings.Contains(cleaned[1].Text, "beta") {
		t.Errorf("cleaned articles out of order: %q, %q", cleaned[0].Text, cleaned[1].Text)
	}
}
