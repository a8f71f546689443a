package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdigest"
)

// Ensure LoggingArtifactStore implements newsdigest.ArtifactStore.
var _ newsdigest.ArtifactStore = (*LoggingArtifactStore)(nil)

// LoggingArtifactStore wraps an ArtifactStore with logging.
type LoggingArtifactStore struct {
	next   newsdigest.ArtifactStore
	logger *slog.Logger
}

// NewLoggingArtifactStore creates a new LoggingArtifactStore.
func NewLoggingArtifactStore(next newsdigest.ArtifactStore, logger *slog.Logger) *LoggingArtifactStore {
	return &LoggingArtifactStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the artifact written.
func (s *LoggingArtifactStore) Save(ctx context.Context, a *newsdigest.Artifact) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save artifact",
			"source", a.SourceName,
			"bytes", a.ByteLength,
			"hash", a.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, a)
}

// SaveDigest delegates to the wrapped store and logs the digest written.
func (s *LoggingArtifactStore) SaveDigest(ctx context.Context, d *newsdigest.Digest) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save digest",
			"run", d.RunID,
			"sections", len(d.Sections),
			"gaps", len(d.Gaps),
			"truncated", d.Truncated,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveDigest(ctx, d)
}
