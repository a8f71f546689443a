package mock

import (
	"context"

	"github.com/fwojciec/newsdigest"
)

var _ newsdigest.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of newsdigest.ArtifactStore.
type ArtifactStore struct {
	SaveFn       func(ctx context.Context, a *newsdigest.Artifact) error
	SaveDigestFn func(ctx context.Context, d *newsdigest.Digest) error
}

func (s *ArtifactStore) Save(ctx context.Context, a *newsdigest.Artifact) error {
	return s.SaveFn(ctx, a)
}

func (s *ArtifactStore) SaveDigest(ctx context.Context, d *newsdigest.Digest) error {
	return s.SaveDigestFn(ctx, d)
}
