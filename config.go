package newsdigest

import "time"

// Defaults applied when configuration leaves a value unset.
const (
	DefaultOutputDirectory    = "output"
	DefaultDigestFile         = "DIGEST.md"
	DefaultFetchTimeout       = 30 * time.Second
	DefaultUserAgent          = "newsdigest/1.0 (+https://github.com/fwojciec/newsdigest)"
	DefaultRateLimit          = 1.0
	DefaultConcurrency        = 1
	DefaultProvider           = "openai"
	DefaultModel              = "gpt-4o-mini"
	DefaultMaxCharsPerRequest = 100000
	DefaultMaxTotalChars      = 50000
)

// Config is the validated configuration of one run.
type Config struct {
	Output  OutputConfig
	Fetch   FetchConfig
	AI      AIConfig
	Sources []Source
}

// OutputConfig controls where artifacts and the digest are written.
type OutputConfig struct {
	Directory  string
	DigestFile string
}

// FetchConfig controls network behavior.
type FetchConfig struct {
	Timeout   time.Duration
	UserAgent string

	// RateLimit is the number of requests per second per host.
	// Zero disables limiting.
	RateLimit float64

	Concurrency int
}

// AIConfig controls digest assembly.
type AIConfig struct {
	Provider           string
	Model              string
	Temperature        *float32
	MaxCharsPerRequest int
	MaxTotalChars      int
	Themes             []string

	// PlatformFilters and SponsorPatterns are regular expressions matched
	// against content blocks during hygiene.
	PlatformFilters []string
	SponsorPatterns []string
}

// Source returns the source with the given name.
// Returns ENOTFOUND if no source has that name.
func (c *Config) Source(name string) (*Source, error) {
	for i := range c.Sources {
		if c.Sources[i].Name == name {
			return &c.Sources[i], nil
		}
	}
	return nil, Errorf(ENOTFOUND, "source %q not found", name)
}

// Select returns the sources named in names, in configuration order.
// An empty names selects every source.
// Returns ENOTFOUND if a name does not match any source.
func (c *Config) Select(names []string) ([]Source, error) {
	if len(names) == 0 {
		return c.Sources, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, err := c.Source(n); err != nil {
			return nil, err
		}
		want[n] = true
	}
	var out []Source
	for _, s := range c.Sources {
		if want[s.Name] {
			out = append(out, s)
		}
	}
	return out, nil
}
