// Package goquery implements newsdigest's selector engine, content
// extraction and plain-text conversion on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/newsdigest"
	"golang.org/x/net/html"
)

// noise matches elements that never carry newsletter text.
var noise = cascadia.MustCompile("script, style, img, picture, svg")

// Document is a parsed page with a working tree. The working tree starts as
// the document body and is narrowed by RestrictTo and pruned by RemoveAll.
type Document struct {
	doc   *goquery.Document
	roots *goquery.Selection
}

// NewDocument parses raw HTML.
func NewDocument(rawHTML string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, newsdigest.WrapError(newsdigest.ENORMALIZE, err, "parsing HTML")
	}
	return &Document{doc: doc, roots: doc.Find("body")}, nil
}

// compile parses a CSS selector. goquery silently matches nothing for an
// invalid selector, so selectors are compiled here to report them.
func compile(selector string) (cascadia.Selector, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, newsdigest.WrapError(newsdigest.ESELECTOR, err, "invalid selector %q", selector)
	}
	return m, nil
}

// CheckSelectors returns an ESELECTOR error for the first selector that
// does not compile. Blank selectors are ignored.
func CheckSelectors(selectors ...string) error {
	for _, sel := range selectors {
		if strings.TrimSpace(sel) == "" {
			continue
		}
		if _, err := compile(sel); err != nil {
			return err
		}
	}
	return nil
}

// RestrictTo replaces the working tree with the elements matching selector,
// in document order. Matches nested inside other matches are dropped so no
// content appears twice. An empty selector selects the body.
func (d *Document) RestrictTo(selector string) error {
	if strings.TrimSpace(selector) == "" {
		d.roots = d.doc.Find("body")
		return nil
	}
	m, err := compile(selector)
	if err != nil {
		return err
	}

	matches := d.doc.FindMatcher(m)
	if matches.Length() == 0 {
		return newsdigest.Errorf(newsdigest.ESELECTOR, "selector %q matched no elements", selector)
	}

	matched := make(map[*html.Node]bool, matches.Length())
	for _, n := range matches.Nodes {
		matched[n] = true
	}
	d.roots = matches.FilterFunction(func(_ int, s *goquery.Selection) bool {
		for p := s.Nodes[0].Parent; p != nil; p = p.Parent {
			if matched[p] {
				return false
			}
		}
		return true
	})
	return nil
}

// RemoveAll deletes, in order, every element matching each selector from the
// working tree, including working roots that match themselves. Blank
// selectors are skipped. Applying the same selectors twice has no further
// effect.
func (d *Document) RemoveAll(selectors []string) error {
	for _, sel := range selectors {
		if strings.TrimSpace(sel) == "" {
			continue
		}
		m, err := compile(sel)
		if err != nil {
			return err
		}
		d.remove(m)
	}
	return nil
}

func (d *Document) remove(m goquery.Matcher) {
	d.roots.FindMatcher(m).Remove()
	d.roots.FilterMatcher(m).Remove()
	d.roots = d.roots.NotMatcher(m)
}

// StripNoise removes scripts, styles, images, pictures and SVGs, and drops
// every inline style attribute.
func (d *Document) StripNoise() {
	d.remove(noise)
	d.roots.Find("[style]").RemoveAttr("style")
	d.roots.RemoveAttr("style")
}

// ExtractLinks returns the value of attr for every element in the whole
// document matching selector, in document order. Elements without attr
// yield "". An empty attr means href.
func (d *Document) ExtractLinks(selector, attr string) ([]string, error) {
	if attr == "" {
		attr = "href"
	}
	m, err := compile(selector)
	if err != nil {
		return nil, err
	}
	var values []string
	d.doc.FindMatcher(m).Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr(attr)
		values = append(values, strings.TrimSpace(v))
	})
	return values, nil
}

// Title returns the trimmed text of the first <title> element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// HTML returns the outer HTML of the working roots joined by newlines.
func (d *Document) HTML() (string, error) {
	parts := make([]string, 0, d.roots.Length())
	for i := range d.roots.Nodes {
		h, err := goquery.OuterHtml(d.roots.Eq(i))
		if err != nil {
			return "", newsdigest.WrapError(newsdigest.ENORMALIZE, err, "rendering HTML")
		}
		parts = append(parts, h)
	}
	return strings.Join(parts, "\n"), nil
}
