package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// Article is one raw item as delivered by the fetcher: metadata plus a
// description that may still carry markup. Articles are owned by a single
// pipeline run and discarded when it completes.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Source      string `json:"source"`
}

// CleanedArticle pairs an Article with its normalized, markup-free text.
// Exactly one CleanedArticle is derived per Article.
type CleanedArticle struct {
	Article   Article `json:"article"`
	Text      string  `json:"text"`
	WordCount int     `json:"word_count"`
}

// GenerateID creates a short, stable ID by hashing the provided string input
func GenerateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}
