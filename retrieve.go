package mediadex

import (
	"context"
	"fmt"

	"github.com/keeva-cloud/mediadex/internal/domain/search/mode"
	"github.com/keeva-cloud/mediadex/internal/domain/search/query"
)

// Mode selects the retrieval strategy.
type Mode string

// Retrieval modes.
const (
	// ModeLexical ranks by BM25 text relevance only.
	ModeLexical Mode = "lexical"
	// ModeVector ranks by cosine similarity of embeddings only.
	ModeVector Mode = "vector"
	// ModeFused merges both sources via weighted Reciprocal Rank Fusion.
	// This is the default.
	ModeFused Mode = "fused"
)

// RetrieveOptions configures a retrieval call.
type RetrieveOptions struct {
	Mode               Mode
	Embedding          []float32
	Category           string
	Limit              int
	MinLexicalScore    float64
	MinSimilarityScore float64
}

// Hit is a single ranked retrieval result.
type Hit struct {
	ItemID    string
	Score     float64
	ScoreKind string
	Rank      int
	Text      string
	Category  string
	Metadata  map[string]string
}

// EngineInfo reports the engine's effective retrieval configuration.
type EngineInfo struct {
	Modes           []string
	LexicalWeight   float64
	VectorWeight    float64
	RRFConstant     int
	OverfetchFactor int
	DefaultLimit    int
	MaxLimit        int
}

// Retrieve executes a tenant-scoped retrieval. If the mode needs an embedding
// and opts carries none, the configured Embedder vectorizes the query text.
// An empty corpus or a query matching nothing yields an empty list, not an
// error.
func (c *Client) Retrieve(
	ctx context.Context, tenantID, text string, opts *RetrieveOptions,
) ([]Hit, error) {
	if opts == nil {
		opts = &RetrieveOptions{}
	}

	m := mode.Mode(opts.Mode)
	embedding := opts.Embedding

	if len(embedding) == 0 && c.embedder != nil && text != "" {
		if m == "" || m.RequiresEmbedding() {
			result, err := c.embedder.Embed(ctx, text)
			if err != nil {
				return nil, fmt.Errorf("retrieve: %w", err)
			}
			embedding = result.Embedding
		}
	}

	q, err := query.New(
		text, embedding, tenantID, opts.Category,
		m, opts.Limit, opts.MinLexicalScore, opts.MinSimilarityScore,
	)
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}

	hits, err := c.retrievalSvc.Retrieve(ctx, &q)
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}

	out := make([]Hit, len(hits))
	for i := range hits {
		h := &hits[i]
		out[i] = Hit{
			ItemID:    h.ItemID(),
			Score:     h.Score(),
			ScoreKind: string(h.Kind()),
			Rank:      h.Rank(),
			Text:      h.Text(),
			Category:  h.Category(),
			Metadata:  h.Metadata(),
		}
	}
	return out, nil
}

// Describe returns the active tuning and limits.
func (c *Client) Describe() EngineInfo {
	d := c.retrievalSvc.Describe()
	return EngineInfo{
		Modes:           d.Modes,
		LexicalWeight:   d.LexicalWeight,
		VectorWeight:    d.VectorWeight,
		RRFConstant:     d.RRFConstant,
		OverfetchFactor: d.OverfetchFactor,
		DefaultLimit:    d.DefaultLimit,
		MaxLimit:        d.MaxLimit,
	}
}
