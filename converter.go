package newsdigest

// Converter converts extracted HTML into a normalized textual form.
type Converter interface {
	// Convert transforms HTML into text or Markdown.
	// Returns ENORMALIZE for empty input.
	Convert(html string) (string, error)
}

// Sanitizer reduces HTML to an allow-listed set of elements and attributes.
type Sanitizer interface {
	Sanitize(html string) string
}
