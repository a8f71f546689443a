package collect

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/newsdigest"
	"golang.org/x/time/rate"
)

var _ newsdigest.HostLimiter = (*HostLimiter)(nil)

// HostLimiter paces fetches per newsletter host. A source's list page and
// the issue pages it links to usually live on one host, so they share a
// bucket and are fetched one after another, while sources on other hosts
// proceed in parallel.
type HostLimiter struct {
	rps float64

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewHostLimiter creates a limiter allowing rps requests per second to each
// host, with a burst of 1. A non-positive rps disables limiting.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		rps:     rps,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until the host's bucket allows another request.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	if l.rps <= 0 {
		return ctx.Err()
	}
	return l.bucket(hostKey(host)).Wait(ctx)
}

func (l *HostLimiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[key]
	if !ok {
		b = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.buckets[key] = b
	}
	return b
}

// hostKey reduces a URL host to the server name it addresses: ports and case
// are ignored, so "Example.com:443" and "example.com" share a bucket.
func hostKey(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(strings.TrimSuffix(host, "."))
}
