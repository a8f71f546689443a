package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdigest"
	"github.com/fwojciec/newsdigest/collect"
	"github.com/fwojciec/newsdigest/digest"
	"github.com/fwojciec/newsdigest/tablewriter"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Printer    *tablewriter.Printer
	Config     *newsdigest.Config
	Collector  *collect.Collector
	Assembler  *digest.Assembler
	Store      newsdigest.ArtifactStore
	DigestPath string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" default:"config.yaml" help:"Path to the configuration file"`
	Verbose bool   `short:"v" help:"Log every fetch, save and summarization"`

	Run     RunCmd     `cmd:"" help:"Collect sources and optionally build the digest"`
	Check   CheckCmd   `cmd:"" help:"Validate the configuration file"`
	Sources SourcesCmd `cmd:"" help:"List configured sources"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Summarize bool          `short:"s" help:"Summarize collected artifacts into a digest"`
	Only      []string      `short:"o" name:"only" help:"Process only the named sources (repeatable)"`
	Timeout   time.Duration `short:"t" help:"Abort the run after this duration (0 means no limit)"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct{}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}
