package catalog

import (
	"context"
	"fmt"

	"github.com/keeva-cloud/mediadex/internal/domain"
	domdoc "github.com/keeva-cloud/mediadex/internal/domain/document"
)

// IndexParams configures the shared corpus index.
type IndexParams struct {
	Dims            int
	HNSWM           int
	HNSWEFConstruct int
}

// Service is the ingestion boundary: documents arrive pre-embedded and fully
// flattened, and every write replaces the whole row.
type Service struct {
	repo   Repository
	params IndexParams
}

// New creates a catalog service.
func New(repo Repository, params IndexParams) *Service {
	return &Service{repo: repo, params: params}
}

// Upsert stores a document, replacing any previous version under the same
// (tenant, item). The embedding dimension must match the index configuration.
// Returns true if the document was created rather than replaced.
func (s *Service) Upsert(ctx context.Context, doc *domdoc.Document) (bool, error) {
	if s.params.Dims > 0 && len(doc.Embedding()) != s.params.Dims {
		return false, fmt.Errorf("%w: document has %d dimensions, index expects %d",
			domain.ErrVectorDimMismatch, len(doc.Embedding()), s.params.Dims)
	}

	created, err := s.repo.Upsert(ctx, doc)
	if err != nil {
		return false, fmt.Errorf("upsert %s/%s: %w", doc.TenantID(), doc.ItemID(), err)
	}
	return created, nil
}

// Get returns a document by (tenant, item).
func (s *Service) Get(ctx context.Context, tenantID, itemID string) (domdoc.Document, error) {
	return s.repo.Get(ctx, tenantID, itemID)
}

// Delete removes a document by (tenant, item).
func (s *Service) Delete(ctx context.Context, tenantID, itemID string) error {
	return s.repo.Delete(ctx, tenantID, itemID)
}

// EnsureIndex creates the corpus index if missing. Called once at startup.
func (s *Service) EnsureIndex(ctx context.Context) error {
	return s.repo.EnsureIndex(ctx, s.params.Dims, s.params.HNSWM, s.params.HNSWEFConstruct)
}
