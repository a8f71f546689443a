// Package yaml loads newsdigest configuration from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/newsdigest"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "config.yaml"

type file struct {
	Output  outputFile   `yaml:"output"`
	Fetch   fetchFile    `yaml:"fetch"`
	AI      aiFile       `yaml:"ai"`
	Sources []sourceFile `yaml:"sources" validate:"required,min=1,dive"`
}

type outputFile struct {
	Directory  string `yaml:"directory"`
	DigestFile string `yaml:"digest_file"`
}

type fetchFile struct {
	Timeout     string   `yaml:"timeout"`
	UserAgent   string   `yaml:"user_agent"`
	RateLimit   *float64 `yaml:"rate_limit" validate:"omitempty,gte=0"`
	Concurrency *int     `yaml:"concurrency"`
}

type aiFile struct {
	Provider           string   `yaml:"provider" validate:"omitempty,oneof=openai gemini"`
	Model              string   `yaml:"model"`
	Temperature        *float32 `yaml:"temperature" validate:"omitempty,gte=0,lte=2"`
	MaxCharsPerRequest int      `yaml:"max_chars_per_request" validate:"gte=0"`
	MaxTotalChars      int      `yaml:"max_total_chars" validate:"gte=0"`
	Themes             []string `yaml:"themes" validate:"dive,required"`
	PlatformFilters    []string `yaml:"platform_filters"`
	SponsorPatterns    []string `yaml:"sponsor_patterns"`
}

type sourceFile struct {
	Name            string        `yaml:"name" validate:"required"`
	Frequency       string        `yaml:"frequency" validate:"required,oneof=daily weekly biweekly monthly"`
	URL             string        `yaml:"url" validate:"omitempty,url"`
	ListPage        *listPageFile `yaml:"list_page"`
	Selector        string        `yaml:"selector"`
	IgnoreSelectors []string      `yaml:"ignore_selectors" validate:"dive,required"`
	OutputFormat    string        `yaml:"output_format" validate:"omitempty,oneof=markdown text"`
	Enabled         *bool         `yaml:"enabled"`
}

type listPageFile struct {
	URL          string `yaml:"url" validate:"required,url"`
	LinkSelector string `yaml:"link_selector" validate:"required"`
	LinkIndex    int    `yaml:"link_index" validate:"min=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// LoadConfig reads and validates the configuration at path.
// All failures are reported with code ECONFIG.
func LoadConfig(path string) (*newsdigest.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newsdigest.WrapError(newsdigest.ECONFIG, err, "read config %s", path)
	}
	return ParseConfig(data)
}

// ParseConfig decodes, validates and applies defaults to YAML configuration.
func ParseConfig(data []byte) (*newsdigest.Config, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newsdigest.Errorf(newsdigest.ECONFIG, "config is empty")
		}
		return nil, newsdigest.WrapError(newsdigest.ECONFIG, err, "parse config")
	}

	if err := validate.Struct(&f); err != nil {
		return nil, translate(err)
	}

	cfg, err := f.config()
	if err != nil {
		return nil, err
	}
	if err := check(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (f *file) config() (*newsdigest.Config, error) {
	cfg := &newsdigest.Config{
		Output: newsdigest.OutputConfig{
			Directory:  orDefault(f.Output.Directory, newsdigest.DefaultOutputDirectory),
			DigestFile: orDefault(f.Output.DigestFile, newsdigest.DefaultDigestFile),
		},
		Fetch: newsdigest.FetchConfig{
			Timeout:     newsdigest.DefaultFetchTimeout,
			UserAgent:   orDefault(f.Fetch.UserAgent, newsdigest.DefaultUserAgent),
			RateLimit:   newsdigest.DefaultRateLimit,
			Concurrency: newsdigest.DefaultConcurrency,
		},
		AI: newsdigest.AIConfig{
			Provider:           orDefault(f.AI.Provider, newsdigest.DefaultProvider),
			Model:              f.AI.Model,
			Temperature:        f.AI.Temperature,
			MaxCharsPerRequest: f.AI.MaxCharsPerRequest,
			MaxTotalChars:      f.AI.MaxTotalChars,
			Themes:             f.AI.Themes,
			PlatformFilters:    f.AI.PlatformFilters,
			SponsorPatterns:    f.AI.SponsorPatterns,
		},
	}

	if f.Fetch.Timeout != "" {
		d, err := time.ParseDuration(f.Fetch.Timeout)
		if err != nil {
			return nil, newsdigest.Errorf(newsdigest.ECONFIG, "fetch.timeout: invalid duration %q", f.Fetch.Timeout)
		}
		if d <= 0 {
			return nil, newsdigest.Errorf(newsdigest.ECONFIG, "fetch.timeout: must be positive")
		}
		cfg.Fetch.Timeout = d
	}
	if f.Fetch.RateLimit != nil {
		cfg.Fetch.RateLimit = *f.Fetch.RateLimit
	}
	if f.Fetch.Concurrency != nil {
		if *f.Fetch.Concurrency < 1 {
			return nil, newsdigest.Errorf(newsdigest.ECONFIG, "fetch.concurrency must be at least 1")
		}
		cfg.Fetch.Concurrency = *f.Fetch.Concurrency
	}
	if cfg.AI.Model == "" && cfg.AI.Provider == newsdigest.DefaultProvider {
		cfg.AI.Model = newsdigest.DefaultModel
	}
	if cfg.AI.MaxCharsPerRequest == 0 {
		cfg.AI.MaxCharsPerRequest = newsdigest.DefaultMaxCharsPerRequest
	}
	if cfg.AI.MaxTotalChars == 0 {
		cfg.AI.MaxTotalChars = newsdigest.DefaultMaxTotalChars
	}
	if len(cfg.AI.Themes) == 0 {
		cfg.AI.Themes = append([]string(nil), newsdigest.DefaultThemes...)
	}

	for _, s := range f.Sources {
		src, err := s.source()
		if err != nil {
			return nil, err
		}
		cfg.Sources = append(cfg.Sources, src)
	}
	return cfg, nil
}

func (s *sourceFile) source() (newsdigest.Source, error) {
	src := newsdigest.Source{
		Name:            s.Name,
		Frequency:       newsdigest.Frequency(s.Frequency),
		Selector:        s.Selector,
		IgnoreSelectors: s.IgnoreSelectors,
		Format:          newsdigest.OutputFormat(orDefault(s.OutputFormat, string(newsdigest.FormatMarkdown))),
		Enabled:         s.Enabled == nil || *s.Enabled,
	}
	switch {
	case s.URL != "" && s.ListPage != nil, s.URL == "" && s.ListPage == nil:
		return src, newsdigest.Errorf(newsdigest.ECONFIG, "source %q: exactly one of url or list_page required", s.Name)
	case s.ListPage != nil:
		src.Locator = newsdigest.TwoStepLocator{
			ListURL:      s.ListPage.URL,
			LinkSelector: s.ListPage.LinkSelector,
			LinkIndex:    s.ListPage.LinkIndex,
		}
	default:
		src.Locator = newsdigest.DirectLocator{URL: s.URL}
	}
	if err := src.Validate(); err != nil {
		return src, err
	}
	return src, nil
}

// check enforces rules that span fields.
func check(cfg *newsdigest.Config) error {
	seen := make(map[string]bool, len(cfg.Sources))
	for _, s := range cfg.Sources {
		if seen[s.Name] {
			return newsdigest.Errorf(newsdigest.ECONFIG, "duplicate source name %q", s.Name)
		}
		seen[s.Name] = true
	}
	// go-openai drops a zero temperature from the request, so the API
	// would silently use its own default instead.
	if cfg.AI.Provider == "openai" && cfg.AI.Temperature != nil && *cfg.AI.Temperature == 0 {
		return newsdigest.Errorf(newsdigest.ECONFIG, "ai.temperature: 0 is not supported by the openai provider, omit it or use a small positive value")
	}
	for _, p := range cfg.AI.PlatformFilters {
		if _, err := regexp.Compile(p); err != nil {
			return newsdigest.WrapError(newsdigest.ECONFIG, err, "ai.platform_filters: invalid pattern %q", p)
		}
	}
	for _, p := range cfg.AI.SponsorPatterns {
		if _, err := regexp.Compile(p); err != nil {
			return newsdigest.WrapError(newsdigest.ECONFIG, err, "ai.sponsor_patterns: invalid pattern %q", p)
		}
	}
	return nil
}

// translate turns validator errors into a single ECONFIG error naming
// every offending field.
func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return newsdigest.WrapError(newsdigest.ECONFIG, err, "validate config")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return newsdigest.Errorf(newsdigest.ECONFIG, "invalid config: %s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
