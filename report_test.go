package newsdigest_test

import (
	"sync"
	"testing"

	"github.com/fwojciec/newsdigest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReport(t *testing.T) {
	t.Parallel()

	t.Run("keeps source order regardless of completion order", func(t *testing.T) {
		t.Parallel()

		report := newsdigest.NewRunReport("run-1", []string{"A", "B", "C"})
		a := &newsdigest.Artifact{SourceName: "A"}
		c := &newsdigest.Artifact{SourceName: "C"}

		var wg sync.WaitGroup
		wg.Add(3)
		go func() { defer wg.Done(); report.Set(2, newsdigest.Success(c)) }()
		go func() { defer wg.Done(); report.Set(1, newsdigest.Skipped("disabled")) }()
		go func() { defer wg.Done(); report.Set(0, newsdigest.Success(a)) }()
		wg.Wait()

		entries := report.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, "A", entries[0].SourceName)
		assert.Equal(t, "B", entries[1].SourceName)
		assert.Equal(t, "C", entries[2].SourceName)
		assert.Equal(t, []*newsdigest.Artifact{a, c}, report.Artifacts())
	})

	t.Run("counts outcomes", func(t *testing.T) {
		t.Parallel()

		report := newsdigest.NewRunReport("run-1", []string{"A", "B", "C"})
		report.Set(0, newsdigest.Success(&newsdigest.Artifact{}))
		report.Set(1, newsdigest.Skipped("disabled"))
		report.Set(2, newsdigest.Failed(newsdigest.Errorf(newsdigest.EFETCH, "HTTP 404")))

		counts := report.Counts()

		assert.Equal(t, newsdigest.Counts{Success: 1, Skipped: 1, Failed: 1}, counts)
		assert.Equal(t, 3, counts.Total())
	})

	t.Run("failed outcome carries error message as reason", func(t *testing.T) {
		t.Parallel()

		err := newsdigest.Errorf(newsdigest.ESELECTOR, "selector %q matched nothing", "article")

		o := newsdigest.Failed(err)

		assert.Equal(t, newsdigest.StatusFailed, o.Status)
		assert.Equal(t, `selector "article" matched nothing`, o.Reason)
		assert.ErrorIs(t, o.Err, err)
	})

	t.Run("tracks which entries were set", func(t *testing.T) {
		t.Parallel()

		report := newsdigest.NewRunReport("run-1", []string{"A", "B"})
		report.Set(1, newsdigest.Skipped("disabled"))

		assert.False(t, report.IsSet(0))
		assert.True(t, report.IsSet(1))
	})
}
