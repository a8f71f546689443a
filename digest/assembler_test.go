package digest_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/newsdigest"
	"github.com/fwojciec/newsdigest/digest"
	"github.com/fwojciec/newsdigest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembler_Assemble(t *testing.T) {
	t.Parallel()

	t.Run("summarizes each batch and merges in order", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var requests []newsdigest.SummaryRequest
		temp := float32(0.7)
		summarizer := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, req newsdigest.SummaryRequest) (*newsdigest.Grouping, error) {
				mu.Lock()
				requests = append(requests, req)
				mu.Unlock()
				switch req.Items[0].SourceName {
				case "A":
					return grouping(theme("JavaScript", item("shared", "https://s.com")), theme("Misc", item("a", "https://a.com"))), nil
				default:
					return grouping(theme("React", item("shared again", "https://s.com"), item("c", "https://c.com"))), nil
				}
			},
		}
		a := &digest.Assembler{
			Summarizer:         summarizer,
			MaxCharsPerRequest: 100,
			Model:              "gpt-4o-mini",
			Temperature:        &temp,
		}

		d, err := a.Assemble(context.Background(), "run-1", []*newsdigest.Artifact{sized("A", 60), sized("B", 60)})

		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, "gpt-4o-mini", requests[0].Model)
		assert.Equal(t, &temp, requests[0].Temperature)
		assert.Equal(t, newsdigest.DefaultThemes, requests[0].Themes)
		assert.Equal(t, "run-1", d.RunID)
		assert.Equal(t, []string{"React", "JavaScript", "Misc"}, themes(d.Sections))
		assert.Equal(t, []newsdigest.Item{item("c", "https://c.com")}, d.Sections[0].Items)
		assert.Empty(t, d.Gaps)
	})

	t.Run("records failed batches as gaps and continues", func(t *testing.T) {
		t.Parallel()

		summarizer := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, req newsdigest.SummaryRequest) (*newsdigest.Grouping, error) {
				if req.Items[0].SourceName == "A" {
					return nil, newsdigest.Errorf(newsdigest.ESUMMARIZE, "rate limited")
				}
				return grouping(theme("Design", item("b", "https://b.com"))), nil
			},
		}
		a := &digest.Assembler{Summarizer: summarizer, MaxCharsPerRequest: 50}

		d, err := a.Assemble(context.Background(), "run-1", []*newsdigest.Artifact{sized("A", 50), sized("B", 50)})

		require.NoError(t, err)
		require.Len(t, d.Gaps, 1)
		assert.Equal(t, 1, d.Gaps[0].Batch)
		assert.Equal(t, []string{"A"}, d.Gaps[0].Sources)
		assert.Equal(t, newsdigest.ESUMMARIZE, newsdigest.ErrorCode(d.Gaps[0].Err))
		assert.Equal(t, []string{"Design"}, themes(d.Sections))
		assert.Contains(t, d.Markdown(), "## Gaps")
	})

	t.Run("applies hygiene before summarizing", func(t *testing.T) {
		t.Parallel()

		h, err := digest.NewHygiene(nil, nil)
		require.NoError(t, err)
		var got []newsdigest.SummaryInput
		summarizer := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, req newsdigest.SummaryRequest) (*newsdigest.Grouping, error) {
				got = req.Items
				return grouping(), nil
			},
		}
		a := &digest.Assembler{Summarizer: summarizer, Hygiene: h}

		_, err = a.Assemble(context.Background(), "run-1", []*newsdigest.Artifact{
			{SourceName: "A", Text: "Keep https://a.com/?utm_source=x\n\nSponsored by Acme"},
			{SourceName: "B", Text: "Advertisement"},
			{SourceName: "C", Format: newsdigest.FormatText, Text: "Vite 6 https://c.com/?utm_source=x Sponsored by Acme"},
		})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, newsdigest.SummaryInput{SourceName: "A", Text: "Keep https://a.com/"}, got[0])
		assert.Equal(t, newsdigest.SummaryInput{SourceName: "C", Text: "Vite 6 https://c.com/ Sponsored by Acme"}, got[1])
	})

	t.Run("no content is an invalid error", func(t *testing.T) {
		t.Parallel()

		a := &digest.Assembler{Summarizer: &mock.Summarizer{}}

		_, err := a.Assemble(context.Background(), "run-1", []*newsdigest.Artifact{{SourceName: "A", Text: "  "}})

		require.Error(t, err)
		assert.Equal(t, newsdigest.EINVALID, newsdigest.ErrorCode(err))
	})

	t.Run("truncates to the total budget", func(t *testing.T) {
		t.Parallel()

		summarizer := &mock.Summarizer{
			SummarizeFn: func(context.Context, newsdigest.SummaryRequest) (*newsdigest.Grouping, error) {
				return grouping(
					theme("React", item("r", "https://r.com")),
					theme("Misc", item(strings.Repeat("long ", 50), "https://m.com")),
				), nil
			},
		}
		a := &digest.Assembler{Summarizer: summarizer, MaxTotalChars: 200}

		d, err := a.Assemble(context.Background(), "run-1", []*newsdigest.Artifact{sized("A", 10)})

		require.NoError(t, err)
		assert.True(t, d.Truncated)
		assert.Equal(t, []string{"React"}, themes(d.Sections))
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		t.Parallel()

		a := &digest.Assembler{Summarizer: &mock.Summarizer{}}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := a.Assemble(ctx, "run-1", []*newsdigest.Artifact{sized("A", 10)})

		require.ErrorIs(t, err, context.Canceled)
	})
}
