package newsdigest

import (
	"fmt"
	"strings"
)

// DigestTitle is the top-level heading of every digest.
const DigestTitle = "Newsletter Digest"

// TruncationNotice is appended to digests cut to fit the size limit.
const TruncationNotice = "_Digest truncated to fit the configured size limit._"

// Section is one theme of a digest with its deduplicated items.
type Section struct {
	Theme string
	Items []Item
}

// Gap records a batch whose summarization failed.
type Gap struct {
	Batch   int
	Sources []string
	Err     error
}

// Digest is the merged, ordered result of summarizing a run's artifacts.
type Digest struct {
	RunID     string
	Sections  []Section
	Gaps      []Gap
	Truncated bool
}

// Markdown renders the digest.
func (d *Digest) Markdown() string {
	blocks := []string{"# " + DigestTitle + "\n"}
	for _, s := range d.Sections {
		blocks = append(blocks, s.Markdown())
	}
	if len(d.Gaps) > 0 {
		var sb strings.Builder
		sb.WriteString("## Gaps\n\n")
		for _, g := range d.Gaps {
			sb.WriteString(g.Markdown())
			sb.WriteByte('\n')
		}
		blocks = append(blocks, sb.String())
	}
	if d.Truncated {
		blocks = append(blocks, TruncationNotice+"\n")
	}
	return strings.Join(blocks, "\n")
}

// Markdown renders the section heading followed by its items.
func (s Section) Markdown() string {
	var sb strings.Builder
	sb.WriteString("## " + s.Theme + "\n\n")
	for _, it := range s.Items {
		sb.WriteString(it.Markdown())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Markdown renders the item as a list entry.
func (it Item) Markdown() string {
	title := strings.TrimSpace(it.Title)
	if title == "" {
		title = it.URL
	}
	var line string
	if it.URL != "" {
		line = fmt.Sprintf("- **[%s](%s)**", title, it.URL)
	} else {
		line = fmt.Sprintf("- **%s**", title)
	}
	if summary := strings.TrimSpace(it.Summary); summary != "" {
		line += ": " + summary
	}
	return line
}

// Markdown renders the gap as a list entry.
func (g Gap) Markdown() string {
	line := fmt.Sprintf("- Batch %d (%s) was not summarized", g.Batch, strings.Join(g.Sources, ", "))
	if g.Err != nil {
		line += ": " + g.Err.Error()
	}
	return line
}
