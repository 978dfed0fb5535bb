package retrieval

import (
	"context"
	"testing"

	"github.com/keeva-cloud/mediadex/internal/domain/search/hit"
	"github.com/keeva-cloud/mediadex/internal/domain/search/mode"
	"github.com/keeva-cloud/mediadex/internal/domain/search/query"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	lexicalFn     func(ctx context.Context, q *query.Query, topK int) ([]hit.Hit, error)
	vectorFn      func(ctx context.Context, q *query.Query, topK int) ([]hit.Hit, error)
	lexicalCalled bool
	vectorCalled  bool
}

func (m *mockRepo) LexicalSearch(ctx context.Context, q *query.Query, topK int) ([]hit.Hit, error) {
	m.lexicalCalled = true
	if m.lexicalFn != nil {
		return m.lexicalFn(ctx, q, topK)
	}
	return nil, nil
}

func (m *mockRepo) VectorSearch(ctx context.Context, q *query.Query, topK int) ([]hit.Hit, error) {
	m.vectorCalled = true
	if m.vectorFn != nil {
		return m.vectorFn(ctx, q, topK)
	}
	return nil, nil
}

func newTestService(t *testing.T) (*Service, *mockRepo) {
	t.Helper()
	mr := &mockRepo{}
	svc := New(mr, DefaultTuning())
	return svc, mr
}

func mustQuery(t *testing.T, m mode.Mode, limit int) *query.Query {
	t.Helper()
	var embedding []float32
	if m.RequiresEmbedding() {
		embedding = []float32{0.1, 0.2}
	}
	q, err := query.New("space opera", embedding, "acme", "", m, limit, 0, 0)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return &q
}
