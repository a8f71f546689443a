package newsdigest

import (
	"context"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Artifact is the normalized content of one source for the current run.
type Artifact struct {
	SourceName  string
	SourceURL   string
	Title       string
	Frequency   Frequency
	Format      OutputFormat
	Text        string
	ByteLength  int
	ContentHash string
	FetchedAt   time.Time
}

// Chars returns the size of the artifact text in characters (runes).
func (a *Artifact) Chars() int {
	return utf8.RuneCountInString(a.Text)
}

// Filename returns the file name the artifact is stored under.
func (a *Artifact) Filename() string {
	return Slug(a.SourceName) + a.Format.Ext()
}

// ArtifactStore persists artifacts and digests. Each Save overwrites the
// previous artifact for the same source.
type ArtifactStore interface {
	Save(ctx context.Context, a *Artifact) error
	SaveDigest(ctx context.Context, d *Digest) error
}

// Slug lower-cases name and replaces every run of non-alphanumeric
// characters with a single underscore. "JS Weekly" becomes "js_weekly".
func Slug(name string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	if b.Len() == 0 {
		return "source"
	}
	return b.String()
}
