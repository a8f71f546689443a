// Package htmltomarkdown implements the markdown form of
// newsdigest.Converter using html-to-markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/newsdigest"
)

// Ensure Converter implements newsdigest.Converter at compile time.
var _ newsdigest.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown with ATX
// headings, "-" bullets and "**" strong emphasis.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithBulletListMarker("-"),
				commonmark.WithStrongDelimiter("**"),
				commonmark.WithListEndComment(false),
			),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into cleaned Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", newsdigest.Errorf(newsdigest.ENORMALIZE, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", newsdigest.WrapError(newsdigest.ENORMALIZE, err, "converting HTML to markdown")
	}

	return CleanMarkdown(result), nil
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// CleanMarkdown trims trailing whitespace from every line, collapses runs of
// blank lines into one and trims leading and trailing blank lines.
func CleanMarkdown(md string) string {
	md = strings.ReplaceAll(md, "\r\n", "\n")
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	md = strings.Join(lines, "\n")
	md = blankRuns.ReplaceAllString(md, "\n\n")
	return strings.Trim(md, "\n")
}
