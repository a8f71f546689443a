package digest

import (
	"regexp"
	"strings"

	"github.com/fwojciec/newsdigest"
)

// DefaultSponsorPatterns match blocks of paid placements.
var DefaultSponsorPatterns = []string{
	`(?i)\bsponsor(ed)?\b`,
	`(?i)\badvertisement\b`,
	`(?i)\bpresented by\b`,
	`(?i)\bbrought to you by\b`,
	`(?i)\bin partnership with\b`,
	`(?i)\bpartner content\b`,
}

// DefaultPlatformFilters match blocks about mobile platforms.
var DefaultPlatformFilters = []string{
	`(?i)\breact[ -]native\b`,
	`(?i)\b(ios|android)\b`,
	`(?i)\bflutter\b`,
	`(?i)\bswiftui\b`,
	`(?i)\bkotlin\b`,
}

// Hygiene removes sponsor and platform blocks from artifact text and strips
// tracking parameters from its links.
type Hygiene struct {
	drop []*regexp.Regexp
}

// NewHygiene compiles the default sponsor patterns plus sponsorPatterns, and
// platformFilters. A nil platformFilters means DefaultPlatformFilters.
// Returns ECONFIG if a pattern does not compile.
func NewHygiene(sponsorPatterns, platformFilters []string) (*Hygiene, error) {
	if platformFilters == nil {
		platformFilters = DefaultPlatformFilters
	}
	patterns := make([]string, 0, len(DefaultSponsorPatterns)+len(sponsorPatterns)+len(platformFilters))
	patterns = append(patterns, DefaultSponsorPatterns...)
	patterns = append(patterns, sponsorPatterns...)
	patterns = append(patterns, platformFilters...)

	h := &Hygiene{}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, newsdigest.WrapError(newsdigest.ECONFIG, err, "invalid pattern %q", p)
		}
		h.drop = append(h.drop, re)
	}
	return h, nil
}

// Clean returns text with tracking parameters removed from its links. In
// markdown, paragraphs, headings and individual list items that match a
// sponsor or platform pattern are dropped; a fenced code block is one unit
// and is never split. Plain text has no reliable item boundaries, so only
// links are rewritten there.
func (h *Hygiene) Clean(text string, format newsdigest.OutputFormat) string {
	if format == newsdigest.FormatText {
		return stripTrackingInText(text)
	}

	var sb strings.Builder
	pendingBlank := false
	for _, b := range splitBlocks(text) {
		pendingBlank = pendingBlank || b.afterBlank
		if h.dropped(b.text) {
			continue
		}
		if sb.Len() > 0 {
			if pendingBlank {
				sb.WriteString("\n\n")
			} else {
				sb.WriteString("\n")
			}
		}
		sb.WriteString(stripTrackingInText(b.text))
		pendingBlank = false
	}
	return sb.String()
}

func (h *Hygiene) dropped(block string) bool {
	for _, re := range h.drop {
		if re.MatchString(block) {
			return true
		}
	}
	return false
}

// block is one filterable unit of markdown. afterBlank records whether a
// blank line preceded it, so kept blocks are rejoined with their original
// spacing.
type block struct {
	text       string
	afterBlank bool
}

var listItem = regexp.MustCompile(`^\s*([-*+]|\d+[.)])\s`)

func splitBlocks(text string) []block {
	var blocks []block
	var cur []string
	inFence := false
	blank := false
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, block{text: strings.Join(cur, "\n"), afterBlank: blank})
			cur = nil
			blank = false
		}
	}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		fence := strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
		if inFence {
			cur = append(cur, line)
			if fence {
				inFence = false
				flush()
			}
			continue
		}
		switch {
		case trimmed == "":
			flush()
			blank = true
			continue
		case fence:
			flush()
			inFence = true
		case strings.HasPrefix(trimmed, "#") || listItem.MatchString(line):
			flush()
			cur = append(cur, line)
			if strings.HasPrefix(trimmed, "#") {
				flush()
			}
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}
