package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/newsdigest"
	"github.com/fwojciec/newsdigest/collect"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	sources, err := deps.Config.Select(c.Only)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdigest.ErrorMessage(err))
		return err
	}

	ctx := deps.Ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	report := deps.Collector.Collect(ctx, sources, func(e collect.ProgressEvent) {
		fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", e.Completed, e.Total, e.Source, e.Outcome.Status)
	})
	if err := deps.Printer.Report(report); err != nil {
		return err
	}

	counts := report.Counts()
	if counts.Success == 0 && counts.Failed > 0 {
		return fmt.Errorf("all %d attempted sources failed", counts.Failed)
	}

	if !c.Summarize {
		return nil
	}

	d, err := deps.Assembler.Assemble(ctx, report.RunID, report.Artifacts())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdigest.ErrorMessage(err))
		return err
	}
	if err := deps.Store.SaveDigest(ctx, d); err != nil {
		return err
	}
	return deps.Printer.Digest(deps.DigestPath, d)
}
