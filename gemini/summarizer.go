// Package gemini implements newsdigest.Summarizer with Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/newsdigest"
	"google.golang.org/genai"
)

// DefaultModel is used when the request names no model.
const DefaultModel = "gemini-2.5-flash"

// Ensure Summarizer implements newsdigest.Summarizer at compile time.
var _ newsdigest.Summarizer = (*Summarizer)(nil)

// Summarizer implements newsdigest.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize sends one batch and parses the JSON grouping from the reply.
func (s *Summarizer) Summarize(ctx context.Context, req newsdigest.SummaryRequest) (*newsdigest.Grouping, error) {
	if len(req.Items) == 0 {
		return nil, newsdigest.Errorf(newsdigest.EINVALID, "summary request has no items")
	}
	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: newsdigest.BuildSummaryPrompt(req)}},
		}},
		BuildConfig(req.Temperature),
	)
	if err != nil {
		return nil, newsdigest.WrapError(newsdigest.ESUMMARIZE, err, "gemini generate content")
	}
	if result == nil {
		return nil, newsdigest.Errorf(newsdigest.ESUMMARIZE, "gemini returned nil result")
	}

	return newsdigest.ParseGrouping(result.Text())
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The temperature is only set when one is configured.
func BuildConfig(temperature *float32) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: newsdigest.SummarySystemPrompt}},
		},
		ResponseMIMEType: "application/json",
	}
	if temperature != nil {
		t := *temperature
		config.Temperature = &t
	}
	return config
}
