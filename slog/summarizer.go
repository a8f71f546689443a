package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdigest"
)

// Ensure LoggingSummarizer implements newsdigest.Summarizer.
var _ newsdigest.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   newsdigest.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next newsdigest.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs batch size and
// the number of themes returned.
func (s *LoggingSummarizer) Summarize(ctx context.Context, req newsdigest.SummaryRequest) (g *newsdigest.Grouping, err error) {
	defer func(begin time.Time) {
		themes := 0
		if g != nil {
			themes = len(g.Themes)
		}
		s.logger.Info("summarize",
			"model", req.Model,
			"sources", len(req.Items),
			"themes", themes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, req)
}
