package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdigest"
)

// Ensure LoggingResolver implements newsdigest.Resolver.
var _ newsdigest.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with logging.
type LoggingResolver struct {
	next   newsdigest.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next newsdigest.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the resolved URL.
func (r *LoggingResolver) Resolve(ctx context.Context, loc newsdigest.Locator) (url string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("resolve",
			"locator", describe(loc),
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, loc)
}

func describe(loc newsdigest.Locator) string {
	switch l := loc.(type) {
	case newsdigest.DirectLocator:
		return "direct " + l.URL
	case newsdigest.TwoStepLocator:
		return "list " + l.ListURL
	default:
		return "unknown"
	}
}
