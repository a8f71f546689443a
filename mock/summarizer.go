package mock

import (
	"context"

	"github.com/fwojciec/newsdigest"
)

var _ newsdigest.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of newsdigest.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, req newsdigest.SummaryRequest) (*newsdigest.Grouping, error)
}

func (s *Summarizer) Summarize(ctx context.Context, req newsdigest.SummaryRequest) (*newsdigest.Grouping, error) {
	return s.SummarizeFn(ctx, req)
}
