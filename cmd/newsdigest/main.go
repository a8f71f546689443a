package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/fwojciec/newsdigest"
	"github.com/fwojciec/newsdigest/bluemonday"
	"github.com/fwojciec/newsdigest/collect"
	"github.com/fwojciec/newsdigest/digest"
	"github.com/fwojciec/newsdigest/fs"
	"github.com/fwojciec/newsdigest/gemini"
	"github.com/fwojciec/newsdigest/goquery"
	"github.com/fwojciec/newsdigest/htmltomarkdown"
	ndhttp "github.com/fwojciec/newsdigest/http"
	"github.com/fwojciec/newsdigest/openai"
	ndslog "github.com/fwojciec/newsdigest/slog"
	"github.com/fwojciec/newsdigest/tablewriter"
	"github.com/fwojciec/newsdigest/yaml"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
	}

	m := NewMain()
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// UseColors enables colored status marks in tables.
	UseColors bool

	// Summarizer overrides the provider configured in the config file.
	// Set before calling Run() for end-to-end testing.
	Summarizer newsdigest.Summarizer

	// Fetcher used by the run command. Closed when Run returns.
	Fetcher newsdigest.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv:    os.Getenv,
		UseColors: !color.NoColor,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsdigest"),
		kong.Description("Collect newsletter issues and summarize them into a themed digest."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsdigest --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Printer = tablewriter.NewPrinter(stdout, m.UseColors)

	cfg, err := yaml.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: pass --config to use a different configuration file\n")
		return err
	}
	deps.Config = cfg

	if kongCtx.Command() == "run" {
		defer m.Close()
		if err := m.wireRun(ctx, deps, cli.Run.Summarize); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wireRun builds the collection pipeline and, when summarizing, the
// digest assembler.
func (m *Main) wireRun(ctx context.Context, deps *Dependencies, summarize bool) error {
	cfg := deps.Config
	logger := deps.Logger

	if m.Fetcher == nil {
		m.Fetcher = ndhttp.NewFetcher(
			ndhttp.WithTimeout(cfg.Fetch.Timeout),
			ndhttp.WithUserAgent(cfg.Fetch.UserAgent),
		)
	}
	fetcher := ndslog.NewLoggingFetcher(
		collect.NewLimitedFetcher(m.Fetcher, collect.NewHostLimiter(cfg.Fetch.RateLimit)),
		logger,
	)

	store := fs.NewStore(cfg.Output.Directory, cfg.Output.DigestFile)
	deps.Store = ndslog.NewLoggingArtifactStore(store, logger)
	deps.DigestPath = store.DigestPath()

	deps.Collector = &collect.Collector{
		Resolver: ndslog.NewLoggingResolver(&collect.Resolver{
			Fetcher: fetcher,
			Links:   goquery.NewLinkExtractor(),
		}, logger),
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Sanitizer: bluemonday.NewSanitizer(),
		Converters: map[newsdigest.OutputFormat]newsdigest.Converter{
			newsdigest.FormatMarkdown: htmltomarkdown.NewConverter(),
			newsdigest.FormatText:     goquery.NewTextConverter(),
		},
		Store:       deps.Store,
		Concurrency: cfg.Fetch.Concurrency,
	}

	if !summarize {
		return nil
	}

	summarizer := m.Summarizer
	if summarizer == nil {
		s, err := m.newSummarizer(ctx, cfg.AI, deps.Stderr)
		if err != nil {
			return err
		}
		summarizer = s
	}

	hygiene, err := digest.NewHygiene(cfg.AI.SponsorPatterns, cfg.AI.PlatformFilters)
	if err != nil {
		return err
	}

	deps.Assembler = &digest.Assembler{
		Summarizer:         ndslog.NewLoggingSummarizer(summarizer, logger),
		Hygiene:            hygiene,
		MaxCharsPerRequest: cfg.AI.MaxCharsPerRequest,
		MaxTotalChars:      cfg.AI.MaxTotalChars,
		Themes:             cfg.AI.Themes,
		Model:              cfg.AI.Model,
		Temperature:        cfg.AI.Temperature,
	}
	return nil
}

// newSummarizer creates the summarizer for the configured provider.
func (m *Main) newSummarizer(ctx context.Context, ai newsdigest.AIConfig, stderr io.Writer) (newsdigest.Summarizer, error) {
	switch ai.Provider {
	case "gemini":
		apiKey := m.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "Hint: get an API key at https://aistudio.google.com/apikey")
			return nil, newsdigest.Errorf(newsdigest.ECONFIG, "GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewSummarizer(client), nil
	case "", "openai":
		apiKey := m.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			apiKey = m.Getenv("OPEN_AI_API_KEY")
		}
		if apiKey == "" {
			fmt.Fprintln(stderr, "Hint: set OPENAI_API_KEY in the environment or a .env file")
			return nil, newsdigest.Errorf(newsdigest.ECONFIG, "OPENAI_API_KEY not set")
		}
		return openai.NewSummarizer(openai.NewClient(apiKey, m.Getenv("OPENAI_BASE_URL"))), nil
	default:
		return nil, newsdigest.Errorf(newsdigest.ECONFIG, "unsupported provider %q", ai.Provider)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
