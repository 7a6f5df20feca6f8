package summarizer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

const cohereRequestTimeout = 60 * time.Second

// CohereModel implements Model using the Cohere Summarize API.
// SDK: github.com/cohere-ai/cohere-go/v2
type CohereModel struct {
	client *cohereclient.Client
}

// NewCohereModel builds a Cohere-backed summarization model.
// A custom HTTP client forces HTTP/1.1 to avoid HTTP/2 protocol errors.
func NewCohereModel(apiKey string) *CohereModel {
	httpClient := &http.Client{
		Timeout: cohereRequestTimeout,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereModel{client: client}
}

// Summarize sends one text to the Cohere Summarize endpoint. The length
// preset is chosen from maxLength; the caller still truncates on overshoot.
func (c *CohereModel) Summarize(ctx context.Context, text string, maxLength int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cohereRequestTimeout)
	defer cancel()

	length := lengthPreset(maxLength)
	format := cohere.SummarizeRequestFormatParagraph

	resp, err := c.client.Summarize(ctx, &cohere.SummarizeRequest{
		Text:   text,
		Length: &length,
		Format: &format,
	})
	if err != nil {
		return "", fmt.Errorf("cohere summarize error: %w", err)
	}
	if resp == nil || resp.Summary == nil {
		return "", errors.New("cohere summarize returned empty response")
	}
	return strings.TrimSpace(*resp.Summary), nil
}

func lengthPreset(maxLength int) cohere.SummarizeRequestLength {
	switch {
	case maxLength > 0 && maxLength < 400:
		return cohere.SummarizeRequestLengthShort
	case maxLength > 0 && maxLength < 800:
		return cohere.SummarizeRequestLengthMedium
	default:
		return cohere.SummarizeRequestLengthLong
	}
}
