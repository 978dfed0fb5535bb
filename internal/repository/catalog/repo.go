package catalog

import (
	"context"
	"fmt"

	"github.com/keeva-cloud/mediadex/internal/db"
	"github.com/keeva-cloud/mediadex/internal/domain"
	domdoc "github.com/keeva-cloud/mediadex/internal/domain/document"
)

// store is the consumer interface for catalog operations (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Repo implements usecase/catalog.Repository.
type Repo struct {
	store store
}

// New creates a catalog repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert creates or replaces a document row. Returns true if created. The old
// row is deleted first so stale fields from a previous version never survive a
// partial overwrite.
func (r *Repo) Upsert(ctx context.Context, doc *domdoc.Document) (bool, error) {
	key := domain.ItemKey(doc.TenantID(), doc.ItemID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	if exists {
		if err := r.store.Del(ctx, key); err != nil {
			return false, fmt.Errorf("del %s: %w", key, err)
		}
	}

	if err := r.store.HSet(ctx, key, buildHashFields(doc)); err != nil {
		return false, fmt.Errorf("hset %s: %w", key, err)
	}

	return !exists, nil
}

// Get returns a document by (tenant, item).
func (r *Repo) Get(ctx context.Context, tenantID, itemID string) (domdoc.Document, error) {
	key := domain.ItemKey(tenantID, itemID)

	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(m) == 0 {
		return domdoc.Document{}, domain.ErrItemNotFound
	}

	return parseHashFields(itemID, tenantID, m), nil
}

// Delete removes a document.
func (r *Repo) Delete(ctx context.Context, tenantID, itemID string) error {
	key := domain.ItemKey(tenantID, itemID)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrItemNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// EnsureIndex creates the corpus FT index if it does not already exist.
func (r *Repo) EnsureIndex(ctx context.Context, dims, hnswM, hnswEFConstruct int) error {
	exists, err := r.store.IndexExists(ctx, domain.IndexName)
	if err != nil {
		return fmt.Errorf("index exists %s: %w", domain.IndexName, err)
	}
	if exists {
		return nil
	}

	def := indexDefinition(dims, hnswM, hnswEFConstruct)
	if err := r.store.CreateIndex(ctx, def); err != nil {
		return fmt.Errorf("create index %s: %w", domain.IndexName, err)
	}
	return nil
}

// indexDefinition is the shared corpus schema: TAG fields for the pushdown
// predicates, one TEXT field for BM25, one HNSW cosine vector field.
func indexDefinition(dims, hnswM, hnswEFConstruct int) *db.IndexDefinition {
	return &db.IndexDefinition{
		Name:     domain.IndexName,
		Prefixes: []string{domain.ItemKeyPrefix},
		Fields: []db.IndexField{
			{Name: "tenant_id", Type: db.IndexFieldTag},
			{Name: "category", Type: db.IndexFieldTag},
			{Name: "content", Type: db.IndexFieldText},
			{
				Name:              "vector",
				Type:              db.IndexFieldVector,
				VectorAlgo:        db.VectorHNSW,
				VectorDim:         dims,
				VectorDistance:    db.DistanceCosine,
				VectorM:           hnswM,
				VectorEFConstruct: hnswEFConstruct,
			},
		},
	}
}
