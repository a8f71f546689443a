package mock

import (
	"context"

	"github.com/fwojciec/newsdigest"
)

var _ newsdigest.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of newsdigest.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ newsdigest.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of newsdigest.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, loc newsdigest.Locator) (string, error)
}

func (r *Resolver) Resolve(ctx context.Context, loc newsdigest.Locator) (string, error) {
	return r.ResolveFn(ctx, loc)
}

var _ newsdigest.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of newsdigest.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
