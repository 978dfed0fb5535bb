package domain

import "context"

// Embedder vectorizes query text. Catalog items arrive pre-embedded, so this
// contract is only exercised on the retrieval path.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// EmbeddingResult carries the embedding vector and token usage.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}
