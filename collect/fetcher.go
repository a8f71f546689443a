package collect

import (
	"context"
	"net/url"

	"github.com/fwojciec/newsdigest"
)

// Ensure LimitedFetcher implements newsdigest.Fetcher at compile time.
var _ newsdigest.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher waits on a per-host limiter before every fetch.
type LimitedFetcher struct {
	next    newsdigest.Fetcher
	limiter newsdigest.HostLimiter
}

// NewLimitedFetcher wraps next so every request first waits on limiter.
func NewLimitedFetcher(next newsdigest.Fetcher, limiter newsdigest.HostLimiter) *LimitedFetcher {
	return &LimitedFetcher{next: next, limiter: limiter}
}

// Fetch waits for the URL's host and then delegates.
func (f *LimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", newsdigest.WrapError(newsdigest.EFETCH, err, "invalid URL %q", rawURL)
	}
	if err := f.limiter.Wait(ctx, u.Host); err != nil {
		return "", newsdigest.WrapError(newsdigest.EFETCH, err, "waiting to fetch %s", rawURL)
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.next.Close()
}
