package mediadex

import (
	"context"
	"fmt"

	domdoc "github.com/keeva-cloud/mediadex/internal/domain/document"
)

// Item is a catalog document. It arrives pre-embedded and fully flattened:
// Text is the searchable representation both retrievers observe, Metadata is
// an opaque display payload never used for ranking.
type Item struct {
	ItemID    string
	TenantID  string
	Category  string
	Text      string
	Embedding []float32
	Metadata  map[string]string
}

// UpsertItem stores an item, replacing any previous version under the same
// (tenant, item). Returns true if the item was created rather than replaced.
func (c *Client) UpsertItem(ctx context.Context, item Item) (bool, error) {
	doc, err := domdoc.New(
		item.ItemID, item.TenantID, item.Category, item.Text,
		item.Embedding, item.Metadata,
	)
	if err != nil {
		return false, fmt.Errorf("upsert item: %w", err)
	}

	created, err := c.catalogSvc.Upsert(ctx, &doc)
	if err != nil {
		return false, fmt.Errorf("upsert item: %w", err)
	}
	return created, nil
}

// GetItem returns an item by (tenant, item). Returns domain.ErrItemNotFound
// wrapped when no such row exists.
func (c *Client) GetItem(ctx context.Context, tenantID, itemID string) (Item, error) {
	doc, err := c.catalogSvc.Get(ctx, tenantID, itemID)
	if err != nil {
		return Item{}, fmt.Errorf("get item: %w", err)
	}

	return Item{
		ItemID:    doc.ItemID(),
		TenantID:  doc.TenantID(),
		Category:  doc.Category(),
		Text:      doc.Text(),
		Embedding: doc.Embedding(),
		Metadata:  doc.Metadata(),
	}, nil
}

// DeleteItem removes an item by (tenant, item).
func (c *Client) DeleteItem(ctx context.Context, tenantID, itemID string) error {
	if err := c.catalogSvc.Delete(ctx, tenantID, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
