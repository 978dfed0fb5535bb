package catalog

import (
	"context"

	domdoc "github.com/keeva-cloud/mediadex/internal/domain/document"
)

// Repository defines the storage contract for catalog operations.
type Repository interface {
	Upsert(ctx context.Context, doc *domdoc.Document) (created bool, err error)
	Get(ctx context.Context, tenantID, itemID string) (domdoc.Document, error)
	Delete(ctx context.Context, tenantID, itemID string) error
	EnsureIndex(ctx context.Context, dims, hnswM, hnswEFConstruct int) error
}
