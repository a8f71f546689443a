package digest

import "github.com/fwojciec/newsdigest"

// Batch groups artifacts greedily in input order so that no batch exceeds
// maxChars characters. An artifact larger than maxChars gets a batch of its
// own; artifacts are never split. A non-positive maxChars puts everything in
// one batch.
func Batch(artifacts []*newsdigest.Artifact, maxChars int) [][]*newsdigest.Artifact {
	var batches [][]*newsdigest.Artifact
	var cur []*newsdigest.Artifact
	size := 0
	for _, a := range artifacts {
		n := a.Chars()
		if len(cur) > 0 && maxChars > 0 && size+n > maxChars {
			batches = append(batches, cur)
			cur, size = nil, 0
		}
		cur = append(cur, a)
		size += n
	}
	if len(cur) > 0 {
		batches = append(batches, cur)
	}
	return batches
}
