package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesCmd_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	config := writeConfig(t, dir, `sources:
  - {name: Ex, frequency: weekly, url: "https://ex.com/latest"}
  - name: Archive
    frequency: monthly
    list_page: {url: "https://archive.example.com/issues", link_selector: "a.issue"}
    output_format: text
    enabled: false
`)
	stdout := &bytes.Buffer{}

	err := newMain(nil).Run(context.Background(), []string{"--config", config, "sources"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "Ex")
	assert.Contains(t, out, "https://ex.com/latest")
	assert.Contains(t, out, "Archive")
	assert.Contains(t, out, "https://archive.example.com/issues")
	assert.Contains(t, out, "text")
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}
