package newsdigest_test

import (
	"testing"

	"github.com/fwojciec/newsdigest"
	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces", "JS Weekly", "js_weekly"},
		{"punctuation runs", "React -- Status!", "react_status"},
		{"leading and trailing", "  Frontend Focus  ", "frontend_focus"},
		{"unicode letters", "Café Weekly", "café_weekly"},
		{"nothing usable", "!!!", "source"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, newsdigest.Slug(tt.in))
		})
	}
}

func TestArtifact_Filename(t *testing.T) {
	t.Parallel()

	md := &newsdigest.Artifact{SourceName: "JS Weekly", Format: newsdigest.FormatMarkdown}
	txt := &newsdigest.Artifact{SourceName: "JS Weekly", Format: newsdigest.FormatText}

	assert.Equal(t, "js_weekly.md", md.Filename())
	assert.Equal(t, "js_weekly.txt", txt.Filename())
}

func TestArtifact_Chars(t *testing.T) {
	t.Parallel()

	a := &newsdigest.Artifact{Text: "héllo"}

	assert.Equal(t, 5, a.Chars())
}
