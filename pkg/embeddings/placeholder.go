package embeddings

import (
	"context"
	"hash/fnv"
	"math"
)

// PlaceholderBackend produces deterministic vectors derived from a hash of
// the input text. The vectors carry no semantic meaning; the backend exists
// for tests and for exercising the CLI offline.
type PlaceholderBackend struct {
	dimension int
}

// NewPlaceholderBackend creates a placeholder backend with the given
// dimension. Non-positive dimensions fall back to DefaultDimension.
func NewPlaceholderBackend(dimension int) *PlaceholderBackend {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &PlaceholderBackend{dimension: dimension}
}

// Embed returns a deterministic unit vector derived from the text.
func (p *PlaceholderBackend) Embed(_ context.Context, text string) ([]float32, error) {
	embedding := make([]float32, p.dimension)

	// Linear congruential sequence seeded by an FNV-1a hash of the text.
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	state := h.Sum64()

	for i := range embedding {
		state = state*6364136223846793005 + 1442695040888963407
		embedding[i] = float32(state>>40)/float32(1<<24) - 0.5
	}

	// L2-normalize so dot products behave like cosine similarity.
	var norm float64
	for _, v := range embedding {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range embedding {
			embedding[i] *= inv
		}
	}

	return embedding, nil
}

// Dimension returns the embedding dimension.
func (p *PlaceholderBackend) Dimension() int {
	return p.dimension
}

// Close releases any resources (no-op for placeholder).
func (*PlaceholderBackend) Close() error {
	return nil
}
