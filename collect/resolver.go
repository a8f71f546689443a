package collect

import (
	"context"
	"net/url"

	"github.com/fwojciec/newsdigest"
)

// Ensure Resolver implements newsdigest.Resolver at compile time.
var _ newsdigest.Resolver = (*Resolver)(nil)

// Resolver finds the content URL of a source.
type Resolver struct {
	Fetcher newsdigest.Fetcher
	Links   newsdigest.LinkExtractor
}

// Resolve returns DirectLocator URLs verbatim. For a TwoStepLocator it
// fetches the list page, picks the LinkIndex-th element matching
// LinkSelector and resolves its href against the list page URL.
func (r *Resolver) Resolve(ctx context.Context, loc newsdigest.Locator) (string, error) {
	switch l := loc.(type) {
	case newsdigest.DirectLocator:
		return l.URL, nil
	case newsdigest.TwoStepLocator:
		return r.resolveListPage(ctx, l)
	default:
		return "", newsdigest.Errorf(newsdigest.EINVALID, "unsupported locator %T", loc)
	}
}

func (r *Resolver) resolveListPage(ctx context.Context, l newsdigest.TwoStepLocator) (string, error) {
	base, err := url.Parse(l.ListURL)
	if err != nil {
		return "", newsdigest.WrapError(newsdigest.EFETCH, err, "invalid list page URL %q", l.ListURL)
	}

	html, err := r.Fetcher.Fetch(ctx, l.ListURL)
	if err != nil {
		return "", err
	}

	links, err := r.Links.ExtractLinks(html, l.LinkSelector, "href")
	if err != nil {
		return "", err
	}
	if len(links) == 0 {
		return "", newsdigest.Errorf(newsdigest.ESELECTOR, "link selector %q matched no elements on %s", l.LinkSelector, l.ListURL)
	}
	if l.LinkIndex < 0 || l.LinkIndex >= len(links) {
		return "", newsdigest.Errorf(newsdigest.ESELECTOR, "link index %d out of range: selector %q matched %d elements", l.LinkIndex, l.LinkSelector, len(links))
	}

	href := links[l.LinkIndex]
	if href == "" {
		return "", newsdigest.Errorf(newsdigest.ESELECTOR, "link %d matched by %q has no href", l.LinkIndex, l.LinkSelector)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", newsdigest.WrapError(newsdigest.ESELECTOR, err, "invalid href %q", href)
	}
	return base.ResolveReference(ref).String(), nil
}
