package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/keeva-cloud/mediadex/internal/domain"
	domdoc "github.com/keeva-cloud/mediadex/internal/domain/document"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	upsertFn      func(ctx context.Context, doc *domdoc.Document) (bool, error)
	getFn         func(ctx context.Context, tenantID, itemID string) (domdoc.Document, error)
	deleteFn      func(ctx context.Context, tenantID, itemID string) error
	ensureIndexFn func(ctx context.Context, dims, m, ef int) error
}

func (r *mockRepo) Upsert(ctx context.Context, doc *domdoc.Document) (bool, error) {
	if r.upsertFn != nil {
		return r.upsertFn(ctx, doc)
	}
	return true, nil
}

func (r *mockRepo) Get(ctx context.Context, tenantID, itemID string) (domdoc.Document, error) {
	if r.getFn != nil {
		return r.getFn(ctx, tenantID, itemID)
	}
	return domdoc.Document{}, domain.ErrItemNotFound
}

func (r *mockRepo) Delete(ctx context.Context, tenantID, itemID string) error {
	if r.deleteFn != nil {
		return r.deleteFn(ctx, tenantID, itemID)
	}
	return nil
}

func (r *mockRepo) EnsureIndex(ctx context.Context, dims, m, ef int) error {
	if r.ensureIndexFn != nil {
		return r.ensureIndexFn(ctx, dims, m, ef)
	}
	return nil
}

func newTestService(t *testing.T, dims int) (*Service, *mockRepo) {
	t.Helper()
	mr := &mockRepo{}
	svc := New(mr, IndexParams{Dims: dims, HNSWM: 16, HNSWEFConstruct: 200})
	return svc, mr
}

func mustDocument(t *testing.T, dims int) *domdoc.Document {
	t.Helper()
	vec := make([]float32, dims)
	for i := range vec {
		vec[i] = 0.1
	}
	doc, err := domdoc.New("item-1", "acme", "books", "a desert planet saga", vec, nil)
	if err != nil {
		t.Fatalf("document.New: %v", err)
	}
	return &doc
}

// --- Tests ---

func TestUpsert_HappyPath(t *testing.T) {
	svc, mr := newTestService(t, 4)
	ctx := context.Background()

	var gotDoc *domdoc.Document
	mr.upsertFn = func(_ context.Context, doc *domdoc.Document) (bool, error) {
		gotDoc = doc
		return true, nil
	}

	created, err := svc.Upsert(ctx, mustDocument(t, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true")
	}
	if gotDoc == nil || gotDoc.ItemID() != "item-1" {
		t.Errorf("unexpected document: %v", gotDoc)
	}
}

func TestUpsert_DimMismatch(t *testing.T) {
	svc, mr := newTestService(t, 8)
	ctx := context.Background()

	mr.upsertFn = func(_ context.Context, _ *domdoc.Document) (bool, error) {
		t.Fatal("repo must not be called on dimension mismatch")
		return false, nil
	}

	_, err := svc.Upsert(ctx, mustDocument(t, 4))
	if !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Fatalf("expected ErrVectorDimMismatch, got %v", err)
	}
}

func TestUpsert_RepoError(t *testing.T) {
	svc, mr := newTestService(t, 4)
	ctx := context.Background()

	mr.upsertFn = func(_ context.Context, _ *domdoc.Document) (bool, error) {
		return false, errors.New("write failed")
	}

	_, err := svc.Upsert(ctx, mustDocument(t, 4))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newTestService(t, 4)

	_, err := svc.Get(context.Background(), "acme", "missing")
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDelete_Passthrough(t *testing.T) {
	svc, mr := newTestService(t, 4)

	var gotTenant, gotItem string
	mr.deleteFn = func(_ context.Context, tenantID, itemID string) error {
		gotTenant, gotItem = tenantID, itemID
		return nil
	}

	if err := svc.Delete(context.Background(), "acme", "item-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTenant != "acme" || gotItem != "item-1" {
		t.Errorf("unexpected args: %s/%s", gotTenant, gotItem)
	}
}

func TestEnsureIndex_PassesParams(t *testing.T) {
	svc, mr := newTestService(t, 1536)

	var gotDims, gotM, gotEF int
	mr.ensureIndexFn = func(_ context.Context, dims, m, ef int) error {
		gotDims, gotM, gotEF = dims, m, ef
		return nil
	}

	if err := svc.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotDims != 1536 || gotM != 16 || gotEF != 200 {
		t.Errorf("unexpected params: %d/%d/%d", gotDims, gotM, gotEF)
	}
}
