package types

import "strings"

// EntityLabel is the closed set of entity kinds the pipeline acts on.
// Recognizer output is converted into this set at the boundary; anything
// the pipeline does not care about collapses to LabelOther.
type EntityLabel int

const (
	LabelOther EntityLabel = iota
	LabelDate
	LabelEvent
)

// Entity is one recognized span within a sentence.
type Entity struct {
	Span  string
	Label EntityLabel
}

// ParseEntityLabel maps a recognizer's loosely-typed label string onto the
// closed EntityLabel set.
func ParseEntityLabel(label string) EntityLabel {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "DATE":
		return LabelDate
	case "EVENT":
		return LabelEvent
	default:
		return LabelOther
	}
}

func (l EntityLabel) String() string {
	switch l {
	case LabelDate:
		return "DATE"
	case LabelEvent:
		return "EVENT"
	default:
		return "OTHER"
	}
}
