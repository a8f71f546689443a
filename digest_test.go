package newsdigest_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/newsdigest"
	"github.com/stretchr/testify/assert"
)

func TestDigest_Markdown(t *testing.T) {
	t.Parallel()

	t.Run("renders sections in order", func(t *testing.T) {
		t.Parallel()

		d := &newsdigest.Digest{
			Sections: []newsdigest.Section{
				{Theme: "React", Items: []newsdigest.Item{{Title: "R19", URL: "https://react.dev", Summary: "Released."}}},
				{Theme: "Misc", Items: []newsdigest.Item{{Title: "Note", Summary: "No link."}}},
			},
		}

		want := "# Newsletter Digest\n" +
			"\n## React\n\n- **[R19](https://react.dev)**: Released.\n" +
			"\n## Misc\n\n- **Note**: No link.\n"
		assert.Equal(t, want, d.Markdown())
	})

	t.Run("renders gaps and truncation notice", func(t *testing.T) {
		t.Parallel()

		d := &newsdigest.Digest{
			Gaps:      []newsdigest.Gap{{Batch: 2, Sources: []string{"A", "B"}, Err: errors.New("timeout")}},
			Truncated: true,
		}

		want := "# Newsletter Digest\n" +
			"\n## Gaps\n\n- Batch 2 (A, B) was not summarized: timeout\n" +
			"\n" + newsdigest.TruncationNotice + "\n"
		assert.Equal(t, want, d.Markdown())
	})
}

func TestItem_Markdown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "- **[https://x.dev](https://x.dev)**", newsdigest.Item{URL: "https://x.dev"}.Markdown())
	assert.Equal(t, "- **[T](https://x.dev)**: S", newsdigest.Item{Title: " T ", URL: "https://x.dev", Summary: "S "}.Markdown())
}
