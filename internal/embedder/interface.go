package embedder

import "context"

// Embedder turns text spans into fixed-length semantic vectors.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
