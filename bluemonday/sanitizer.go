// Package bluemonday implements newsdigest.Sanitizer with an allow-list
// policy suited to newsletter content.
package bluemonday

import (
	"regexp"

	"github.com/fwojciec/newsdigest"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements newsdigest.Sanitizer at compile time.
var _ newsdigest.Sanitizer = (*Sanitizer)(nil)

// Sanitizer keeps structural and text formatting elements and links, and
// drops every other element while keeping its text.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()

	p.AllowElements("article", "section", "main", "div", "p", "span", "br", "hr")
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowElements("ul", "ol", "li", "dl", "dt", "dd")
	p.AllowElements("blockquote", "pre", "code")
	p.AllowElements("b", "strong", "i", "em", "u", "s", "del", "ins", "mark", "sub", "sup")
	p.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption")

	p.AllowStandardURLs()
	p.AllowRelativeURLs(true)
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(false)
	p.RequireNoReferrerOnLinks(false)

	// Keeps fenced code languages for the markdown converter.
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+-]+$`)).OnElements("code")

	return &Sanitizer{policy: p}
}

// Sanitize returns html reduced to the allowed elements and attributes.
func (s *Sanitizer) Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return s.policy.Sanitize(html)
}
