package newsdigest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultThemes is the canonical theme order of a digest.
var DefaultThemes = []string{"React", "JavaScript", "Updates", "New Tools", "Design", "Misc"}

// MiscTheme is always rendered last.
const MiscTheme = "Misc"

// SummaryInput is one source's content within a batch.
type SummaryInput struct {
	SourceName string
	Text       string
}

// SummaryRequest is one call to the summarization capability.
type SummaryRequest struct {
	Model string

	// Temperature is nil when the caller did not configure one.
	Temperature *float32

	Themes []string
	Items  []SummaryInput
}

// Item is one entry of a theme in a grouping or digest.
type Item struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

// Theme groups items under a label.
type Theme struct {
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// Grouping is the structured result of summarizing one batch.
type Grouping struct {
	Themes []Theme `json:"themes"`
}

// Summarizer groups batched newsletter content into themes.
type Summarizer interface {
	// Summarize returns the grouping for one batch.
	// Returns ESUMMARIZE when the call fails or the response is unusable.
	Summarize(ctx context.Context, req SummaryRequest) (*Grouping, error)
}

// SummarySystemPrompt is the system instruction shared by summarizers.
const SummarySystemPrompt = "You are a technical content curator specializing in web development newsletters. " +
	"You excel at extracting key information, organizing content logically, and presenting it in a clear, concise format."

// BuildSummaryPrompt builds the user prompt for one batch.
func BuildSummaryPrompt(req SummaryRequest) string {
	themes := req.Themes
	if len(themes) == 0 {
		themes = DefaultThemes
	}

	var sb strings.Builder
	sb.WriteString("You are a technical newsletter curator. Analyze the following web development newsletter content and group it into themes.\n\n")
	sb.WriteString("# Instructions:\n\n")
	sb.WriteString("1. Group content into these themes ONLY:\n")
	for _, t := range themes {
		fmt.Fprintf(&sb, "   - %s\n", t)
	}
	sb.WriteString("\n2. Filtering rules:\n")
	sb.WriteString("   - IGNORE anything related to React Native or mobile development\n")
	sb.WriteString("   - IGNORE framework-specific content EXCEPT React and Node.js\n")
	sb.WriteString("   - REMOVE all sponsor content and advertisements\n")
	sb.WriteString("   - IGNORE job postings and classifieds\n")
	sb.WriteString("\n3. Link handling:\n")
	sb.WriteString("   - Use FINAL destination URLs\n")
	sb.WriteString("   - Remove tracking parameters from URLs\n")
	sb.WriteString("\n4. Content:\n")
	sb.WriteString("   - Focus on tutorials, libraries, tools, and updates\n")
	sb.WriteString("   - Include version numbers for releases\n")
	sb.WriteString("   - Keep summaries concise (1-2 sentences max)\n")
	sb.WriteString("   - Don't mention source names or newsletters\n")
	sb.WriteString("\n# Output:\n\n")
	sb.WriteString("Respond with JSON only, in this shape:\n")
	sb.WriteString(`{"themes":[{"label":"<theme>","items":[{"title":"<title>","url":"<url>","summary":"<summary>"}]}]}`)
	sb.WriteString("\n\n# Newsletter Content:\n\n")

	for i, item := range req.Items {
		if i > 0 {
			sb.WriteString("\n\n---\n\n")
		}
		fmt.Fprintf(&sb, "# Source: %s\n\n%s", item.SourceName, item.Text)
	}
	return sb.String()
}

// ParseGrouping decodes a summarizer response. A surrounding Markdown code
// fence is tolerated.
func ParseGrouping(s string) (*Grouping, error) {
	s = stripCodeFence(strings.TrimSpace(s))
	if s == "" {
		return nil, Errorf(ESUMMARIZE, "empty summarizer response")
	}
	var g Grouping
	if err := json.Unmarshal([]byte(s), &g); err != nil {
		return nil, WrapError(ESUMMARIZE, err, "decoding summarizer response")
	}
	return &g, nil
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	nl := strings.IndexByte(s, '\n')
	if nl < 0 {
		return ""
	}
	s = s[nl+1:]
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}
