package goquery

import (
	"strings"

	"github.com/fwojciec/newsdigest"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure TextConverter implements newsdigest.Converter at compile time.
var _ newsdigest.Converter = (*TextConverter)(nil)

// TextConverter renders HTML as plain text: every visible text node in
// document order, whitespace collapsed, joined by single spaces.
type TextConverter struct{}

// NewTextConverter creates a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Convert returns the visible text of rawHTML.
func (c *TextConverter) Convert(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", newsdigest.Errorf(newsdigest.ENORMALIZE, "empty HTML input")
	}

	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", newsdigest.WrapError(newsdigest.ENORMALIZE, err, "parsing HTML")
	}

	var words []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hidden(n.DataAtom) {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
				words = append(words, text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return strings.Join(words, " "), nil
}

func hidden(a atom.Atom) bool {
	switch a {
	case atom.Head, atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Svg:
		return true
	}
	return false
}
