package newsdigest

// ExtractRules controls which parts of a page survive extraction.
type ExtractRules struct {
	// Selector restricts the working tree to matching subtrees.
	// Empty means the document body.
	Selector string

	// IgnoreSelectors are removed from the working tree in order.
	IgnoreSelectors []string
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the trimmed text of the page's <title> element.
	Title string

	// ContentHTML is the restricted working tree with noise and ignored
	// elements removed.
	ContentHTML string
}

// Extractor narrows a page down to the content a source cares about.
type Extractor interface {
	// Extract parses html, restricts it to rules.Selector, removes the
	// unconditional noise elements and then rules.IgnoreSelectors.
	// Returns ESELECTOR when the selector matches nothing or is invalid.
	Extract(html string, rules ExtractRules) (*ExtractResult, error)
}

// LinkExtractor returns attribute values of matching elements.
type LinkExtractor interface {
	// ExtractLinks returns the value of attr for every element matching
	// selector, in document order. Elements lacking attr yield "".
	ExtractLinks(html, selector, attr string) ([]string, error)
}
