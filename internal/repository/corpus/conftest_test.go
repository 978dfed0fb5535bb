package corpus

import (
	"context"
	"testing"

	"github.com/keeva-cloud/mediadex/internal/db"
	"github.com/keeva-cloud/mediadex/internal/domain/search/mode"
	"github.com/keeva-cloud/mediadex/internal/domain/search/query"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchKNNFn  func(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	searchBM25Fn func(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

func (m *mockStore) SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
	if m.searchKNNFn != nil {
		return m.searchKNNFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchBM25(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if m.searchBM25Fn != nil {
		return m.searchBM25Fn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func newTestRepo(t *testing.T, dims int) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, dims)
	return repo, ms
}

func testVector(dims int) []float32 {
	vec := make([]float32, dims)
	for i := range vec {
		vec[i] = 0.1
	}
	return vec
}

func mustQuery(
	t *testing.T, text string, embedding []float32,
	m mode.Mode, minLexical, minSimilarity float64,
) *query.Query {
	t.Helper()
	q, err := query.New(text, embedding, "acme", "", m, 10, minLexical, minSimilarity)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return &q
}
