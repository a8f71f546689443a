package digest

import (
	"unicode/utf8"

	"github.com/fwojciec/newsdigest"
)

// Truncate cuts d so its rendered Markdown, truncation notice and gaps
// included, is at most maxChars characters. Gap error details go first.
// Trailing gaps are then dropped until the first item of the first section
// fits, after which whole sections are cut from the end and finally items
// of the first section. A non-positive maxChars disables truncation.
func Truncate(d *newsdigest.Digest, maxChars int) {
	if maxChars <= 0 || chars(d) <= maxChars {
		return
	}
	d.Truncated = true

	if len(d.Gaps) > 0 {
		gaps := make([]newsdigest.Gap, len(d.Gaps))
		for i, g := range d.Gaps {
			g.Err = nil
			gaps[i] = g
		}
		d.Gaps = gaps
		if chars(d) <= maxChars {
			return
		}
	}

	sections := d.Sections
	if len(sections) > 0 && len(sections[0].Items) > 0 {
		d.Sections = []newsdigest.Section{{Theme: sections[0].Theme, Items: sections[0].Items[:1]}}
		dropGaps(d, maxChars)
	}

	for n := len(sections); n >= 1; n-- {
		d.Sections = sections[:n]
		if chars(d) <= maxChars {
			return
		}
	}

	if len(sections) > 0 {
		first := sections[0]
		for n := len(first.Items) - 1; n >= 1; n-- {
			d.Sections = []newsdigest.Section{{Theme: first.Theme, Items: first.Items[:n]}}
			if chars(d) <= maxChars {
				return
			}
		}
	}
	d.Sections = nil
	dropGaps(d, maxChars)
}

// dropGaps removes trailing gaps until d fits or none are left.
func dropGaps(d *newsdigest.Digest, maxChars int) {
	for len(d.Gaps) > 0 && chars(d) > maxChars {
		d.Gaps = d.Gaps[:len(d.Gaps)-1]
	}
}

func chars(d *newsdigest.Digest) int {
	return utf8.RuneCountInString(d.Markdown())
}
