// Package openai implements newsdigest.Summarizer with the OpenAI chat
// completions API.
package openai

import (
	"context"
	"strings"

	"github.com/fwojciec/newsdigest"
	openai "github.com/sashabaranov/go-openai"
)

// Token limits per model family.
const (
	maxTokens           = 4000
	maxCompletionTokens = 16000
)

// Ensure Summarizer implements newsdigest.Summarizer at compile time.
var _ newsdigest.Summarizer = (*Summarizer)(nil)

// Summarizer groups batch content with an OpenAI chat model.
type Summarizer struct {
	client *openai.Client
}

// NewSummarizer creates a Summarizer using client.
func NewSummarizer(client *openai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// NewClient creates an OpenAI client. An empty baseURL uses the public API.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Summarize sends one batch and parses the JSON grouping from the reply.
func (s *Summarizer) Summarize(ctx context.Context, req newsdigest.SummaryRequest) (*newsdigest.Grouping, error) {
	if req.Model == "" {
		req.Model = newsdigest.DefaultModel
	}

	resp, err := s.client.CreateChatCompletion(ctx, BuildRequest(req))
	if err != nil {
		return nil, newsdigest.WrapError(newsdigest.ESUMMARIZE, err, "openai chat completion")
	}
	if len(resp.Choices) == 0 {
		return nil, newsdigest.Errorf(newsdigest.ESUMMARIZE, "no choices returned from %s", req.Model)
	}

	choice := resp.Choices[0]
	if choice.Message.Content == "" {
		if choice.Message.Refusal != "" {
			return nil, newsdigest.Errorf(newsdigest.ESUMMARIZE, "model refused to respond: %s", choice.Message.Refusal)
		}
		return nil, newsdigest.Errorf(newsdigest.ESUMMARIZE, "empty response from %s, finish reason %q", req.Model, choice.FinishReason)
	}

	return newsdigest.ParseGrouping(choice.Message.Content)
}

// BuildRequest builds the chat completion request for a batch. Reasoning
// models reject a custom temperature and use max_completion_tokens.
func BuildRequest(req newsdigest.SummaryRequest) openai.ChatCompletionRequest {
	r := openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: newsdigest.SummarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: newsdigest.BuildSummaryPrompt(req)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	if IsReasoningModel(req.Model) {
		r.MaxCompletionTokens = maxCompletionTokens
		return r
	}
	r.MaxTokens = maxTokens
	// Temperature is omitempty in go-openai, so 0 is never sent; config
	// loading rejects it for this provider.
	if req.Temperature != nil {
		r.Temperature = *req.Temperature
	}
	return r
}

// IsReasoningModel reports whether model belongs to a family that only
// supports the default temperature.
func IsReasoningModel(model string) bool {
	for _, prefix := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}
