package goquery

import (
	"github.com/fwojciec/newsdigest"
)

// Ensure Extractor implements newsdigest.Extractor at compile time.
var _ newsdigest.Extractor = (*Extractor)(nil)

// Extractor applies a source's selectors to a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract restricts the page to rules.Selector, strips noise elements and
// then removes rules.IgnoreSelectors in order.
func (e *Extractor) Extract(rawHTML string, rules newsdigest.ExtractRules) (*newsdigest.ExtractResult, error) {
	doc, err := NewDocument(rawHTML)
	if err != nil {
		return nil, err
	}
	if err := doc.RestrictTo(rules.Selector); err != nil {
		return nil, err
	}
	doc.StripNoise()
	if err := doc.RemoveAll(rules.IgnoreSelectors); err != nil {
		return nil, err
	}

	content, err := doc.HTML()
	if err != nil {
		return nil, err
	}
	return &newsdigest.ExtractResult{
		Title:       doc.Title(),
		ContentHTML: content,
	}, nil
}
