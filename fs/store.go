// Package fs provides file-based storage for newsletter artifacts and
// digests.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/newsdigest"
)

// Ensure Store implements newsdigest.ArtifactStore at compile time.
var _ newsdigest.ArtifactStore = (*Store)(nil)

// Store writes one file per source into a directory, overwriting the
// previous run's file. Writes are atomic: content goes to a temporary file
// that is renamed into place.
type Store struct {
	dir        string
	digestFile string
}

// NewStore creates a Store writing artifacts into dir and the digest into
// dir/digestFile. An empty digestFile means newsdigest.DefaultDigestFile.
func NewStore(dir, digestFile string) *Store {
	if digestFile == "" {
		digestFile = newsdigest.DefaultDigestFile
	}
	return &Store{dir: dir, digestFile: digestFile}
}

// ArtifactPath returns the path an artifact is written to.
func (s *Store) ArtifactPath(a *newsdigest.Artifact) string {
	return filepath.Join(s.dir, a.Filename())
}

// DigestPath returns the path the digest is written to.
func (s *Store) DigestPath() string {
	return filepath.Join(s.dir, s.digestFile)
}

// Save writes the artifact with its frontmatter.
func (s *Store) Save(ctx context.Context, a *newsdigest.Artifact) error {
	if a.SourceName == "" {
		return newsdigest.Errorf(newsdigest.EINVALID, "artifact source name required")
	}
	return writeFile(s.ArtifactPath(a), FormatArtifact(a))
}

// SaveDigest writes the rendered digest.
func (s *Store) SaveDigest(ctx context.Context, d *newsdigest.Digest) error {
	return writeFile(s.DigestPath(), d.Markdown())
}

// FormatArtifact formats an artifact with YAML frontmatter.
func FormatArtifact(a *newsdigest.Artifact) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(a.SourceName)
	b.WriteString("\nurl: ")
	b.WriteString(a.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(a.Title)
	b.WriteString("\nfrequency: ")
	b.WriteString(string(a.Frequency))
	b.WriteString("\nformat: ")
	b.WriteString(string(a.Format))
	b.WriteString("\nhash: ")
	b.WriteString(a.ContentHash)
	b.WriteString("\nfetched: ")
	b.WriteString(a.FetchedAt.UTC().Format(time.RFC3339))
	b.WriteString("\n---\n\n")
	b.WriteString(a.Text)
	b.WriteString("\n")
	return b.String()
}

func writeFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
