package goquery

import (
	"github.com/fwojciec/newsdigest"
)

// Ensure LinkExtractor implements newsdigest.LinkExtractor at compile time.
var _ newsdigest.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor pulls attribute values out of list and archive pages.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks returns attr of every element matching selector in document
// order.
func (e *LinkExtractor) ExtractLinks(rawHTML, selector, attr string) ([]string, error) {
	doc, err := NewDocument(rawHTML)
	if err != nil {
		return nil, err
	}
	return doc.ExtractLinks(selector, attr)
}
