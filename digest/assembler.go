// Package digest assembles a theme-grouped digest from a run's artifacts:
// content hygiene, batching under a character budget, one summarization
// call per batch, merging with deduplication, and truncation.
package digest

import (
	"context"
	"strings"

	"github.com/fwojciec/newsdigest"
)

// Assembler builds digests.
type Assembler struct {
	Summarizer newsdigest.Summarizer

	// Hygiene is optional.
	Hygiene *Hygiene

	MaxCharsPerRequest int
	MaxTotalChars      int
	Themes             []string
	Model              string
	Temperature        *float32
}

// Assemble summarizes artifacts and merges the results. A failed batch is
// recorded as a gap and the remaining batches still run. Returns EINVALID
// when no artifact has content left after hygiene.
func (a *Assembler) Assemble(ctx context.Context, runID string, artifacts []*newsdigest.Artifact) (*newsdigest.Digest, error) {
	cleaned := make([]*newsdigest.Artifact, 0, len(artifacts))
	for _, art := range artifacts {
		text := art.Text
		if a.Hygiene != nil {
			text = a.Hygiene.Clean(text, art.Format)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		c := *art
		c.Text = text
		cleaned = append(cleaned, &c)
	}
	if len(cleaned) == 0 {
		return nil, newsdigest.Errorf(newsdigest.EINVALID, "no content to summarize")
	}

	themes := a.Themes
	if len(themes) == 0 {
		themes = newsdigest.DefaultThemes
	}

	d := &newsdigest.Digest{RunID: runID}
	var groupings []*newsdigest.Grouping
	for i, batch := range Batch(cleaned, a.MaxCharsPerRequest) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req := newsdigest.SummaryRequest{
			Model:       a.Model,
			Temperature: a.Temperature,
			Themes:      themes,
			Items:       make([]newsdigest.SummaryInput, len(batch)),
		}
		sources := make([]string, len(batch))
		for j, art := range batch {
			req.Items[j] = newsdigest.SummaryInput{SourceName: art.SourceName, Text: art.Text}
			sources[j] = art.SourceName
		}

		g, err := a.Summarizer.Summarize(ctx, req)
		if err != nil {
			d.Gaps = append(d.Gaps, newsdigest.Gap{Batch: i + 1, Sources: sources, Err: err})
			continue
		}
		groupings = append(groupings, g)
	}

	d.Sections = Merge(groupings, themes)
	Truncate(d, a.MaxTotalChars)
	return d, nil
}
