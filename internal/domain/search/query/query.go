package query

import (
	"fmt"

	"github.com/keeva-cloud/mediadex/internal/domain"
	"github.com/keeva-cloud/mediadex/internal/domain/search/mode"
)

// Query parameter limits.
const (
	// MaxTextLength is the maximum allowed query text length.
	MaxTextLength = 1024
	DefaultLimit  = 10
	MaxLimit      = 50
)

// Query is a validated, tenant-scoped retrieval request.
type Query struct {
	text          string
	embedding     []float32
	tenantID      string
	category      string
	searchMode    mode.Mode
	limit         int
	minLexical    float64
	minSimilarity float64
}

// New validates and normalizes query parameters.
// Defaults: mode=fused, limit=10. Limit is clamped to 1..50.
// Vector and fused modes require a precomputed query embedding; rejecting that
// here guarantees no backend call is ever made for an invalid request.
func New(
	text string,
	embedding []float32,
	tenantID, category string,
	m mode.Mode,
	limit int,
	minLexical, minSimilarity float64,
) (Query, error) {
	if text == "" {
		return Query{}, fmt.Errorf("%w: query text is required", domain.ErrValidation)
	}
	if len(text) > MaxTextLength {
		return Query{}, fmt.Errorf("%w: query text too long (max %d chars)", domain.ErrValidation, MaxTextLength)
	}
	if tenantID == "" {
		return Query{}, fmt.Errorf("%w: tenant ID is required", domain.ErrValidation)
	}
	if m == "" {
		m = mode.Fused
	}
	if !m.IsValid() {
		return Query{}, fmt.Errorf("%w: invalid retrieval mode %q", domain.ErrValidation, m)
	}
	if m.RequiresEmbedding() && len(embedding) == 0 {
		return Query{}, fmt.Errorf("%w: query embedding is required for %s mode", domain.ErrValidation, m)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if minLexical < 0 {
		return Query{}, fmt.Errorf("%w: min_lexical_score must not be negative", domain.ErrValidation)
	}
	if minSimilarity < 0 || minSimilarity > 1 {
		return Query{}, fmt.Errorf("%w: min_similarity_score must be between 0 and 1", domain.ErrValidation)
	}

	return Query{
		text:          text,
		embedding:     embedding,
		tenantID:      tenantID,
		category:      category,
		searchMode:    m,
		limit:         limit,
		minLexical:    minLexical,
		minSimilarity: minSimilarity,
	}, nil
}

// Text returns the raw user query.
func (q *Query) Text() string { return q.text }

// Embedding returns the precomputed query vector (nil in lexical mode).
func (q *Query) Embedding() []float32 { return q.embedding }

// TenantID returns the owner scope. Every query is tenant-scoped.
func (q *Query) TenantID() string { return q.tenantID }

// Category returns the optional equality filter ("" = no filter).
func (q *Query) Category() string { return q.category }

// Mode returns the retrieval strategy.
func (q *Query) Mode() mode.Mode { return q.searchMode }

// Limit returns the maximum output list length.
func (q *Query) Limit() int { return q.limit }

// MinLexical returns the BM25 score floor (positive-is-better convention;
// hits strictly below the floor are excluded).
func (q *Query) MinLexical() float64 { return q.minLexical }

// MinSimilarity returns the cosine similarity floor in [0,1].
func (q *Query) MinSimilarity() float64 { return q.minSimilarity }
