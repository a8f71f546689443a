package mock

import "github.com/fwojciec/newsdigest"

var _ newsdigest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsdigest.Extractor.
type Extractor struct {
	ExtractFn func(html string, rules newsdigest.ExtractRules) (*newsdigest.ExtractResult, error)
}

func (e *Extractor) Extract(html string, rules newsdigest.ExtractRules) (*newsdigest.ExtractResult, error) {
	return e.ExtractFn(html, rules)
}

var _ newsdigest.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of newsdigest.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html, selector, attr string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html, selector, attr string) ([]string, error) {
	return e.ExtractLinksFn(html, selector, attr)
}
