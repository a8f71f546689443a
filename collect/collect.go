// Package collect runs the per-source pipeline: resolve, fetch, extract,
// sanitize, convert and store. Sources are isolated from each other; a
// failing source never stops its siblings.
package collect

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/newsdigest"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Collector turns configured sources into stored artifacts.
type Collector struct {
	Resolver   newsdigest.Resolver
	Fetcher    newsdigest.Fetcher
	Extractor  newsdigest.Extractor
	Sanitizer  newsdigest.Sanitizer
	Converters map[newsdigest.OutputFormat]newsdigest.Converter
	Store      newsdigest.ArtifactStore

	// Concurrency bounds how many sources run at once. Values below 1 mean
	// sequential processing.
	Concurrency int

	// Now defaults to time.Now.
	Now func() time.Time
}

// ProgressEvent reports a source that finished processing.
type ProgressEvent struct {
	Completed int
	Total     int
	Source    string
	Outcome   newsdigest.Outcome
}

// ProgressFunc is a callback for reporting collection progress.
type ProgressFunc func(event ProgressEvent)

// Collect processes sources and returns one report entry per source in the
// given order. Canceling ctx stops work on remaining sources, which are
// reported as failed with the context error.
func (c *Collector) Collect(ctx context.Context, sources []newsdigest.Source, progress ProgressFunc) *newsdigest.RunReport {
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.Name
	}
	report := newsdigest.NewRunReport(uuid.NewString(), names)

	concurrency := c.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var g errgroup.Group
	g.SetLimit(concurrency)

	events := make(chan ProgressEvent, len(sources))
	for i, src := range sources {
		g.Go(func() error {
			outcome := c.process(ctx, src)
			report.Set(i, outcome)
			events <- ProgressEvent{Source: src.Name, Outcome: outcome}
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(events)
	}()

	completed := 0
	for ev := range events {
		completed++
		if progress != nil {
			ev.Completed = completed
			ev.Total = len(sources)
			progress(ev)
		}
	}

	return report
}

func (c *Collector) process(ctx context.Context, src newsdigest.Source) newsdigest.Outcome {
	if !src.Enabled {
		return newsdigest.Skipped("disabled")
	}
	if err := ctx.Err(); err != nil {
		return newsdigest.Failed(err)
	}

	a, err := c.collect(ctx, src)
	if err != nil {
		return newsdigest.Failed(err)
	}
	return newsdigest.Success(a)
}

func (c *Collector) collect(ctx context.Context, src newsdigest.Source) (*newsdigest.Artifact, error) {
	contentURL, err := c.Resolver.Resolve(ctx, src.Locator)
	if err != nil {
		return nil, err
	}

	html, err := c.Fetcher.Fetch(ctx, contentURL)
	if err != nil {
		return nil, err
	}

	extracted, err := c.Extractor.Extract(html, newsdigest.ExtractRules{
		Selector:        src.Selector,
		IgnoreSelectors: src.IgnoreSelectors,
	})
	if err != nil {
		return nil, err
	}

	content := extracted.ContentHTML
	if c.Sanitizer != nil {
		content = c.Sanitizer.Sanitize(content)
	}

	conv, ok := c.Converters[src.Format]
	if !ok {
		return nil, newsdigest.Errorf(newsdigest.EINVALID, "no converter for output format %q", src.Format)
	}
	text, err := conv.Convert(content)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, newsdigest.Errorf(newsdigest.ENORMALIZE, "no text content at %s", contentURL)
	}

	title := extracted.Title
	if title == "" {
		title = contentURL
	}
	a := &newsdigest.Artifact{
		SourceName:  src.Name,
		SourceURL:   contentURL,
		Title:       title,
		Frequency:   src.Frequency,
		Format:      src.Format,
		Text:        text,
		ByteLength:  len(text),
		ContentHash: ComputeHash(text),
		FetchedAt:   c.now(),
	}

	if err := c.Store.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (c *Collector) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
