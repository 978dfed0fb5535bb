package mode

// Mode is the retrieval strategy.
type Mode string

// Retrieval mode constants.
const (
	// Lexical ranks by BM25 keyword relevance only.
	Lexical Mode = "lexical"
	// Vector ranks by dense-vector cosine similarity only.
	Vector Mode = "vector"
	// Fused runs both retrievers and merges the lists via weighted RRF.
	Fused Mode = "fused"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Lexical || m == Vector || m == Fused
}

// RequiresEmbedding reports whether the mode needs a precomputed query vector.
func (m Mode) RequiresEmbedding() bool {
	return m == Vector || m == Fused
}
