package newsdigest

import "strings"

// Frequency describes how often a newsletter publishes a new issue.
type Frequency string

// Supported publication frequencies.
const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Valid reports whether f is a supported frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

// OutputFormat selects the textual representation of a normalized source.
type OutputFormat string

// Supported output formats.
const (
	FormatMarkdown OutputFormat = "markdown"
	FormatText     OutputFormat = "text"
)

// Valid reports whether f is a supported output format.
func (f OutputFormat) Valid() bool {
	return f == FormatMarkdown || f == FormatText
}

// Ext returns the file extension used for artifacts in this format.
func (f OutputFormat) Ext() string {
	if f == FormatText {
		return ".txt"
	}
	return ".md"
}

// Locator tells the resolver where a source's content lives. It is a closed
// set: the only implementations are DirectLocator and TwoStepLocator.
type Locator interface {
	locator()
}

// DirectLocator points at a fixed content URL.
type DirectLocator struct {
	URL string
}

func (DirectLocator) locator() {}

// TwoStepLocator finds the content URL on an archive or list page. The
// resolver fetches ListURL, selects every element matching LinkSelector and
// follows the href of the element at LinkIndex.
type TwoStepLocator struct {
	ListURL      string
	LinkSelector string
	LinkIndex    int
}

func (TwoStepLocator) locator() {}

// Source is one configured newsletter origin with its own locator and
// formatting rules. Sources are built once per run from configuration and
// are not modified afterwards.
type Source struct {
	Name      string
	Frequency Frequency
	Locator   Locator

	// Selector restricts extraction to the matching subtrees. Empty means
	// the whole document body.
	Selector string

	// IgnoreSelectors are removed, in order, after restriction.
	IgnoreSelectors []string

	Format  OutputFormat
	Enabled bool
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return Errorf(ECONFIG, "source name required")
	}
	if !s.Frequency.Valid() {
		return Errorf(ECONFIG, "source %q: invalid frequency %q", s.Name, s.Frequency)
	}
	if !s.Format.Valid() {
		return Errorf(ECONFIG, "source %q: invalid output format %q", s.Name, s.Format)
	}
	switch l := s.Locator.(type) {
	case DirectLocator:
		if l.URL == "" {
			return Errorf(ECONFIG, "source %q: url required", s.Name)
		}
	case TwoStepLocator:
		if l.ListURL == "" {
			return Errorf(ECONFIG, "source %q: list page url required", s.Name)
		}
		if strings.TrimSpace(l.LinkSelector) == "" {
			return Errorf(ECONFIG, "source %q: list page link selector required", s.Name)
		}
		if l.LinkIndex < 0 {
			return Errorf(ECONFIG, "source %q: link index must not be negative", s.Name)
		}
	default:
		return Errorf(ECONFIG, "source %q: exactly one of url or list_page required", s.Name)
	}
	return nil
}
