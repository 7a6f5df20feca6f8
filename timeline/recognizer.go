package timeline

import (
	"regexp"
	"sort"

	"newslens/types"
)

// Recognizer is the NER collaborator: it finds date-like and event-like
// spans in one sentence. External implementations may emit loosely-typed
// labels; those are converted to the closed EntityLabel set at the boundary
// (types.ParseEntityLabel).
type Recognizer interface {
	ExtractDateEntities(text string) []types.Entity
}

const monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

const weekdayPattern = `(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)`

// datePatterns, in match-priority order. Longer, more specific forms first
// so "March 3, 2023" is not claimed by the bare "March 2023" shape.
var datePatterns = []*regexp.Regexp{
	// March 3, 2023 / Mar 3 2023 / March 3rd, 2023
	regexp.MustCompile(`(?i)\b` + monthPattern + `\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,)?\s+\d{4}\b`),
	// 3 March 2023
	regexp.MustCompile(`(?i)\b\d{1,2}\s+` + monthPattern + `\.?(?:,)?\s+\d{4}\b`),
	// 2023-03-03
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	// 03/03/2023
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
	// March 2023
	regexp.MustCompile(`(?i)\b` + monthPattern + `\.?\s+\d{4}\b`),
	// March 3 (year-less)
	regexp.MustCompile(`(?i)\b` + monthPattern + `\.?\s+\d{1,2}(?:st|nd|rd|th)?\b`),
	// early/mid/late 2024
	regexp.MustCompile(`(?i)\b(?:early|mid|late)[\s-]\d{4}\b`),
	// last Tuesday / next week / last month
	regexp.MustCompile(`(?i)\b(?:last|next)\s+(?:` + weekdayPattern + `|week|month|year)\b`),
	// yesterday, today, tomorrow
	regexp.MustCompile(`(?i)\b(?:yesterday|today|tomorrow)\b`),
}

// HeuristicRecognizer is the process-default date recognizer: a fixed set of
// regular expressions over common absolute and relative date shapes. It
// stands in for a full NER model and only ever emits DATE entities.
type HeuristicRecognizer struct{}

// NewHeuristicRecognizer returns the default recognizer.
func NewHeuristicRecognizer() *HeuristicRecognizer {
	return &HeuristicRecognizer{}
}

// ExtractDateEntities returns the date spans found in text, left to right.
// Overlapping matches are suppressed: once a span is claimed by a pattern,
// later patterns cannot claim any part of it.
func (r *HeuristicRecognizer) ExtractDateEntities(text string) []types.Entity {
	type match struct {
		start, end int
		entity     types.Entity
	}
	var matches []match

	overlaps := func(start, end int) bool {
		for _, m := range matches {
			if start < m.end && end > m.start {
				return true
			}
		}
		return false
	}

	for _, pattern := range datePatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			if overlaps(loc[0], loc[1]) {
				continue
			}
			matches = append(matches, match{
				start: loc[0],
				end:   loc[1],
				entity: types.Entity{
					Span:  text[loc[0]:loc[1]],
					Label: types.LabelDate,
				},
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	entities := make([]types.Entity, len(matches))
	for i, m := range matches {
		entities[i] = m.entity
	}
	return entities
}
