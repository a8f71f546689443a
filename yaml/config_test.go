package yaml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/newsdigest"
	"github.com/fwojciec/newsdigest/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
output:
  directory: out
  digest_file: WEEKLY.md
fetch:
  timeout: 10s
  user_agent: test-agent
  rate_limit: 0
  concurrency: 4
ai:
  provider: gemini
  model: gemini-2.5-pro
  temperature: 0.3
  max_chars_per_request: 2000
  max_total_chars: 1000
  themes: [Go, Misc]
  platform_filters: ["(?i)android"]
  sponsor_patterns: ["(?i)brought to you"]
sources:
  - name: Ex
    frequency: weekly
    url: https://ex.com
    selector: article
    ignore_selectors: [nav, footer]
    output_format: markdown
  - name: Archive
    frequency: monthly
    list_page:
      url: https://archive.example.com/issues
      link_selector: "a.issue"
      link_index: 1
    output_format: text
    enabled: false
`

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("decodes every section", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseConfig([]byte(fullConfig))

		require.NoError(t, err)
		assert.Equal(t, "out", cfg.Output.Directory)
		assert.Equal(t, "WEEKLY.md", cfg.Output.DigestFile)
		assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, "test-agent", cfg.Fetch.UserAgent)
		assert.Zero(t, cfg.Fetch.RateLimit)
		assert.Equal(t, 4, cfg.Fetch.Concurrency)
		assert.Equal(t, "gemini", cfg.AI.Provider)
		assert.Equal(t, "gemini-2.5-pro", cfg.AI.Model)
		require.NotNil(t, cfg.AI.Temperature)
		assert.InDelta(t, 0.3, *cfg.AI.Temperature, 0.001)
		assert.Equal(t, 2000, cfg.AI.MaxCharsPerRequest)
		assert.Equal(t, 1000, cfg.AI.MaxTotalChars)
		assert.Equal(t, []string{"Go", "Misc"}, cfg.AI.Themes)
		assert.Equal(t, []string{"(?i)android"}, cfg.AI.PlatformFilters)
		assert.Equal(t, []string{"(?i)brought to you"}, cfg.AI.SponsorPatterns)

		require.Len(t, cfg.Sources, 2)
		ex := cfg.Sources[0]
		assert.Equal(t, "Ex", ex.Name)
		assert.Equal(t, newsdigest.FrequencyWeekly, ex.Frequency)
		assert.Equal(t, newsdigest.DirectLocator{URL: "https://ex.com"}, ex.Locator)
		assert.Equal(t, "article", ex.Selector)
		assert.Equal(t, []string{"nav", "footer"}, ex.IgnoreSelectors)
		assert.Equal(t, newsdigest.FormatMarkdown, ex.Format)
		assert.True(t, ex.Enabled)

		archive := cfg.Sources[1]
		assert.Equal(t, newsdigest.TwoStepLocator{
			ListURL:      "https://archive.example.com/issues",
			LinkSelector: "a.issue",
			LinkIndex:    1,
		}, archive.Locator)
		assert.Equal(t, newsdigest.FormatText, archive.Format)
		assert.False(t, archive.Enabled)
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseConfig([]byte(`
sources:
  - name: Ex
    frequency: daily
    url: https://ex.com
`))

		require.NoError(t, err)
		assert.Equal(t, newsdigest.DefaultOutputDirectory, cfg.Output.Directory)
		assert.Equal(t, newsdigest.DefaultDigestFile, cfg.Output.DigestFile)
		assert.Equal(t, newsdigest.DefaultFetchTimeout, cfg.Fetch.Timeout)
		assert.Equal(t, newsdigest.DefaultUserAgent, cfg.Fetch.UserAgent)
		assert.InDelta(t, newsdigest.DefaultRateLimit, cfg.Fetch.RateLimit, 0)
		assert.Equal(t, newsdigest.DefaultConcurrency, cfg.Fetch.Concurrency)
		assert.Equal(t, newsdigest.DefaultProvider, cfg.AI.Provider)
		assert.Equal(t, newsdigest.DefaultModel, cfg.AI.Model)
		assert.Nil(t, cfg.AI.Temperature)
		assert.Equal(t, newsdigest.DefaultMaxCharsPerRequest, cfg.AI.MaxCharsPerRequest)
		assert.Equal(t, newsdigest.DefaultMaxTotalChars, cfg.AI.MaxTotalChars)
		assert.Equal(t, newsdigest.DefaultThemes, cfg.AI.Themes)
		assert.Nil(t, cfg.AI.PlatformFilters)
		assert.Equal(t, newsdigest.FormatMarkdown, cfg.Sources[0].Format)
		assert.True(t, cfg.Sources[0].Enabled)
	})

	t.Run("leaves gemini model to the provider default", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseConfig([]byte(`
ai:
  provider: gemini
sources:
  - {name: Ex, frequency: daily, url: "https://ex.com"}
`))

		require.NoError(t, err)
		assert.Empty(t, cfg.AI.Model)
	})

	t.Run("accepts zero temperature for gemini", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseConfig([]byte(`
ai:
  provider: gemini
  temperature: 0
sources:
  - {name: Ex, frequency: daily, url: "https://ex.com"}
`))

		require.NoError(t, err)
		require.NotNil(t, cfg.AI.Temperature)
		assert.Zero(t, *cfg.AI.Temperature)
	})
}

func TestParseConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  string
		message string
	}{
		{
			name:    "empty document",
			config:  "",
			message: "config is empty",
		},
		{
			name:    "malformed yaml",
			config:  "sources: [",
			message: "parse config",
		},
		{
			name:    "unknown field",
			config:  "bogus: 1\nsources:\n  - {name: Ex, frequency: daily, url: \"https://ex.com\"}\n",
			message: "parse config",
		},
		{
			name:    "no sources",
			config:  "output:\n  directory: out\n",
			message: "sources is required",
		},
		{
			name:    "missing name",
			config:  "sources:\n  - {frequency: daily, url: \"https://ex.com\"}\n",
			message: "sources[0].name is required",
		},
		{
			name:    "bad frequency",
			config:  "sources:\n  - {name: Ex, frequency: hourly, url: \"https://ex.com\"}\n",
			message: "sources[0].frequency must be one of",
		},
		{
			name:    "bad url",
			config:  "sources:\n  - {name: Ex, frequency: daily, url: \"not a url\"}\n",
			message: "sources[0].url must be a valid URL",
		},
		{
			name:    "bad output format",
			config:  "sources:\n  - {name: Ex, frequency: daily, url: \"https://ex.com\", output_format: pdf}\n",
			message: "sources[0].output_format must be one of",
		},
		{
			name:    "both locators",
			config:  "sources:\n  - name: Ex\n    frequency: daily\n    url: https://ex.com\n    list_page: {url: \"https://ex.com/a\", link_selector: a}\n",
			message: "exactly one of url or list_page required",
		},
		{
			name:    "no locator",
			config:  "sources:\n  - {name: Ex, frequency: daily}\n",
			message: "exactly one of url or list_page required",
		},
		{
			name:    "list page without selector",
			config:  "sources:\n  - name: Ex\n    frequency: daily\n    list_page: {url: \"https://ex.com/a\"}\n",
			message: "sources[0].list_page.link_selector is required",
		},
		{
			name:    "negative link index",
			config:  "sources:\n  - name: Ex\n    frequency: daily\n    list_page: {url: \"https://ex.com/a\", link_selector: a, link_index: -1}\n",
			message: "sources[0].list_page.link_index must be at least 0",
		},
		{
			name:    "duplicate names",
			config:  "sources:\n  - {name: Ex, frequency: daily, url: \"https://ex.com\"}\n  - {name: Ex, frequency: weekly, url: \"https://ex.org\"}\n",
			message: `duplicate source name "Ex"`,
		},
		{
			name:    "bad timeout",
			config:  "fetch:\n  timeout: soon\nsources:\n  - {name: Ex, frequency: daily, url: \"https://ex.com\"}\n",
			message: "fetch.timeout: invalid duration",
		},
		{
			name:    "zero concurrency",
			config:  "fetch:\n  concurrency: 0\nsources:\n  - {name: Ex, frequency: daily, url: \"https://ex.com\"}\n",
			message: "fetch.concurrency must be at least 1",
		},
		{
			name:    "bad provider",
			config:  "ai:\n  provider: llama\nsources:\n  - {name: Ex, frequency: daily, url: \"https://ex.com\"}\n",
			message: "ai.provider must be one of",
		},
		{
			name:    "bad platform filter",
			config:  "ai:\n  platform_filters: [\"(\"]\nsources:\n  - {name: Ex, frequency: daily, url: \"https://ex.com\"}\n",
			message: "ai.platform_filters: invalid pattern",
		},
		{
			name:    "bad sponsor pattern",
			config:  "ai:\n  sponsor_patterns: [\"[\"]\nsources:\n  - {name: Ex, frequency: daily, url: \"https://ex.com\"}\n",
			message: "ai.sponsor_patterns: invalid pattern",
		},
		{
			name:    "temperature out of range",
			config:  "ai:\n  temperature: 3\nsources:\n  - {name: Ex, frequency: daily, url: \"https://ex.com\"}\n",
			message: "ai.temperature must be at most 2",
		},
		{
			name:    "zero temperature with openai",
			config:  "ai:\n  provider: openai\n  temperature: 0\nsources:\n  - {name: Ex, frequency: daily, url: \"https://ex.com\"}\n",
			message: "ai.temperature: 0 is not supported by the openai provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := yaml.ParseConfig([]byte(tt.config))

			require.Error(t, err)
			assert.Equal(t, newsdigest.ECONFIG, newsdigest.ErrorCode(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("reads file from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(fullConfig), 0o644))

		cfg, err := yaml.LoadConfig(path)

		require.NoError(t, err)
		assert.Len(t, cfg.Sources, 2)
	})

	t.Run("missing file is a config error", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.Equal(t, newsdigest.ECONFIG, newsdigest.ErrorCode(err))
	})
}
