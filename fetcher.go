package newsdigest

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations do not execute JavaScript and never retry.
type Fetcher interface {
	// Fetch performs a single GET of the URL and returns the decoded body.
	// Returns EFETCH on transport errors, timeouts and non-2xx responses.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Resolver maps a source locator to the URL of its current content.
type Resolver interface {
	// Resolve returns an absolute content URL.
	// DirectLocator values are returned verbatim without network access.
	Resolve(ctx context.Context, loc Locator) (string, error)
}

// HostLimiter paces requests per host.
type HostLimiter interface {
	// Wait blocks until a request to host is allowed.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context, host string) error
}
