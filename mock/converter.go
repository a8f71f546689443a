package mock

import "github.com/fwojciec/newsdigest"

var _ newsdigest.Converter = (*Converter)(nil)

// Converter is a mock implementation of newsdigest.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ newsdigest.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of newsdigest.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}
