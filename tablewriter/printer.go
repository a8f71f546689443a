// Package tablewriter renders run summaries and source listings as
// terminal tables.
package tablewriter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/fwojciec/newsdigest"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const maxURLWidth = 60

// Printer writes human readable summaries to w.
type Printer struct {
	w         io.Writer
	useColors bool
}

// NewPrinter creates a Printer. When useColors is false, statuses are
// rendered as bracketed words instead of colored marks.
func NewPrinter(w io.Writer, useColors bool) *Printer {
	return &Printer{w: w, useColors: useColors}
}

// Report renders one row per source followed by a counts line.
func (p *Printer) Report(r *newsdigest.RunReport) error {
	rows := make([][]string, 0, len(r.Entries()))
	for _, e := range r.Entries() {
		rows = append(rows, []string{e.SourceName, p.status(e.Outcome.Status), detail(e.Outcome)})
	}
	if err := render(p.w, []string{"SOURCE", "STATUS", "DETAIL"}, rows); err != nil {
		return err
	}

	c := r.Counts()
	_, err := fmt.Fprintf(p.w, "\n%d sources: %d succeeded, %d skipped, %d failed\n",
		c.Total(), c.Success, c.Skipped, c.Failed)
	return err
}

// Sources renders the configured sources.
func (p *Printer) Sources(sources []newsdigest.Source) error {
	rows := make([][]string, 0, len(sources))
	for _, s := range sources {
		enabled := "yes"
		if !s.Enabled {
			enabled = "no"
		}
		rows = append(rows, []string{
			s.Name,
			string(s.Frequency),
			string(s.Format),
			enabled,
			TruncateURL(locatorURL(s.Locator), maxURLWidth),
		})
	}
	return render(p.w, []string{"NAME", "FREQUENCY", "FORMAT", "ENABLED", "URL"}, rows)
}

// Digest reports where the digest was written.
func (p *Printer) Digest(path string, d *newsdigest.Digest) error {
	items := 0
	for _, s := range d.Sections {
		items += len(s.Items)
	}
	msg := fmt.Sprintf("Digest written to %s (%d sections, %d items)", path, len(d.Sections), items)
	if len(d.Gaps) > 0 {
		msg += fmt.Sprintf(", %d batches not summarized", len(d.Gaps))
	}
	if d.Truncated {
		msg += ", truncated"
	}
	_, err := fmt.Fprintln(p.w, p.paint(color.FgCyan, msg))
	return err
}

func (p *Printer) status(s newsdigest.Status) string {
	if !p.useColors {
		return "[" + string(s) + "]"
	}
	switch s {
	case newsdigest.StatusSuccess:
		return p.paint(color.FgGreen, "✓ "+string(s))
	case newsdigest.StatusSkipped:
		return p.paint(color.FgYellow, "- "+string(s))
	default:
		return p.paint(color.FgRed, "✗ "+string(s))
	}
}

func (p *Printer) paint(attr color.Attribute, s string) string {
	if !p.useColors {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

func detail(o newsdigest.Outcome) string {
	if o.Status == newsdigest.StatusSuccess && o.Artifact != nil {
		a := o.Artifact
		return fmt.Sprintf("%s %s %s", a.Filename(), FormatBytes(a.ByteLength), TruncateURL(a.SourceURL, maxURLWidth))
	}
	return o.Reason
}

func locatorURL(loc newsdigest.Locator) string {
	switch l := loc.(type) {
	case newsdigest.DirectLocator:
		return l.URL
	case newsdigest.TwoStepLocator:
		return l.ListURL
	}
	return ""
}

func render(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.Off},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
