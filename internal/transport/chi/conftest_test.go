package chi

import (
	"context"
	"net/http"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/keeva-cloud/mediadex/internal/domain"
	domdoc "github.com/keeva-cloud/mediadex/internal/domain/document"
	"github.com/keeva-cloud/mediadex/internal/domain/search/hit"
	"github.com/keeva-cloud/mediadex/internal/domain/search/query"
	cataloguc "github.com/keeva-cloud/mediadex/internal/usecase/catalog"
	healthuc "github.com/keeva-cloud/mediadex/internal/usecase/health"
	retrievaluc "github.com/keeva-cloud/mediadex/internal/usecase/retrieval"
)

// mockRetrievalRepo implements retrieval.Repository.
type mockRetrievalRepo struct {
	lexicalFn func(ctx context.Context, q *query.Query, topK int) ([]hit.Hit, error)
	vectorFn  func(ctx context.Context, q *query.Query, topK int) ([]hit.Hit, error)
}

func (m *mockRetrievalRepo) LexicalSearch(ctx context.Context, q *query.Query, topK int) ([]hit.Hit, error) {
	if m.lexicalFn != nil {
		return m.lexicalFn(ctx, q, topK)
	}
	return nil, nil
}

func (m *mockRetrievalRepo) VectorSearch(ctx context.Context, q *query.Query, topK int) ([]hit.Hit, error) {
	if m.vectorFn != nil {
		return m.vectorFn(ctx, q, topK)
	}
	return nil, nil
}

// mockCatalogRepo implements catalog.Repository.
type mockCatalogRepo struct {
	upsertFn func(ctx context.Context, doc *domdoc.Document) (bool, error)
	getFn    func(ctx context.Context, tenantID, itemID string) (domdoc.Document, error)
	deleteFn func(ctx context.Context, tenantID, itemID string) error
}

func (m *mockCatalogRepo) Upsert(ctx context.Context, doc *domdoc.Document) (bool, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, doc)
	}
	return true, nil
}

func (m *mockCatalogRepo) Get(ctx context.Context, tenantID, itemID string) (domdoc.Document, error) {
	if m.getFn != nil {
		return m.getFn(ctx, tenantID, itemID)
	}
	return domdoc.Document{}, domain.ErrItemNotFound
}

func (m *mockCatalogRepo) Delete(ctx context.Context, tenantID, itemID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, tenantID, itemID)
	}
	return nil
}

func (m *mockCatalogRepo) EnsureIndex(ctx context.Context, dims, hnswM, hnswEFConstruct int) error {
	return nil
}

// mockPinger implements health.StorePinger.
type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error { return m.err }

// mockEmbedder implements domain.Embedder.
type mockEmbedder struct {
	result domain.EmbeddingResult
	err    error
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	return m.result, m.err
}

type serverDeps struct {
	retrievalRepo *mockRetrievalRepo
	catalogRepo   *mockCatalogRepo
	pinger        *mockPinger
	embedder      domain.Embedder
	dims          int
}

func newTestRouter(deps serverDeps) http.Handler {
	if deps.retrievalRepo == nil {
		deps.retrievalRepo = &mockRetrievalRepo{}
	}
	if deps.catalogRepo == nil {
		deps.catalogRepo = &mockCatalogRepo{}
	}
	if deps.pinger == nil {
		deps.pinger = &mockPinger{}
	}
	if deps.dims == 0 {
		deps.dims = 4
	}

	retrievalSvc := retrievaluc.New(deps.retrievalRepo, retrievaluc.DefaultTuning())
	catalogSvc := cataloguc.New(deps.catalogRepo, cataloguc.IndexParams{Dims: deps.dims})
	healthSvc := healthuc.New(deps.pinger, nil)

	server := NewServer(retrievalSvc, catalogSvc, healthSvc, deps.embedder, zap.NewNop())

	r := chirouter.NewRouter()
	server.Register(r)
	return r
}

func testVector(dims int) []float32 {
	v := make([]float32, dims)
	for i := range v {
		v[i] = 0.1
	}
	return v
}
