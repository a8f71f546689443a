package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/newsdigest"
	main "github.com/fwojciec/newsdigest/cmd/newsdigest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports a valid configuration", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Config: &newsdigest.Config{
				AI: newsdigest.AIConfig{Provider: "gemini"},
				Sources: []newsdigest.Source{
					{Name: "Ex", Selector: "article", IgnoreSelectors: []string{"nav"}, Enabled: true},
					{Name: "Archive", Locator: newsdigest.TwoStepLocator{LinkSelector: "a.issue"}},
				},
			},
		}

		err := (&main.CheckCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Configuration OK: 2 sources (1 enabled), provider gemini\n", stdout.String())
	})

	t.Run("rejects invalid selectors", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Config: &newsdigest.Config{
				Sources: []newsdigest.Source{
					{Name: "Ex", IgnoreSelectors: []string{"div["}},
					{Name: "Archive", Locator: newsdigest.TwoStepLocator{LinkSelector: "a[href"}},
					{Name: "Fine", Selector: "main"},
				},
			},
		}

		err := (&main.CheckCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, newsdigest.ECONFIG, newsdigest.ErrorCode(err))
		assert.Contains(t, err.Error(), "2 sources have invalid selectors")
		assert.Contains(t, stderr.String(), "Ex:")
		assert.Contains(t, stderr.String(), "Archive:")
		assert.NotContains(t, stderr.String(), "Fine:")
	})
}
