package hit

// Kind tags which scoring scheme produced a hit's score.
type Kind string

// Score kinds per retrieval mode.
const (
	// KindLexical is a raw BM25 relevance score (positive, unbounded).
	KindLexical Kind = "lexical"
	// KindSimilarity is a cosine similarity in [0,1].
	KindSimilarity Kind = "similarity"
	// KindFusedRRF is a weighted Reciprocal Rank Fusion score.
	KindFusedRRF Kind = "fused_rrf"
)

// Hit is a single ranked retrieval result.
type Hit struct {
	itemID   string
	score    float64
	kind     Kind
	rank     int
	text     string
	category string
	metadata map[string]string
}

// New creates a hit. Rank is 1-based; retriever-internal candidates carry
// rank 0 until the facade shapes the final list.
func New(
	itemID string, score float64, kind Kind, rank int,
	text, category string, metadata map[string]string,
) Hit {
	return Hit{
		itemID: itemID, score: score, kind: kind, rank: rank,
		text: text, category: category, metadata: metadata,
	}
}

// WithRank returns a copy with the given 1-based rank.
func (h Hit) WithRank(rank int) Hit {
	h.rank = rank
	return h
}

// ItemID returns the stable item identifier.
func (h *Hit) ItemID() string { return h.itemID }

// Score returns the score; semantics depend on Kind.
func (h *Hit) Score() float64 { return h.score }

// Kind returns the scoring scheme tag.
func (h *Hit) Kind() Kind { return h.kind }

// Rank returns the 1-based position in the returned list.
func (h *Hit) Rank() int { return h.rank }

// Text returns the document's flattened text for display.
func (h *Hit) Text() string { return h.text }

// Category returns the document's category label.
func (h *Hit) Category() string { return h.category }

// Metadata returns the opaque display payload.
func (h *Hit) Metadata() map[string]string { return h.metadata }
