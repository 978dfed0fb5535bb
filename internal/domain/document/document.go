package document

import (
	"fmt"
	"regexp"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxTextSize is the maximum flattened text size in bytes.
const MaxTextSize = 65536 // 64KB

// Document is the unit of retrieval (immutable value object). Uniqueness is
// (tenant_id, item_id): the same item id may exist under different tenants.
// The text field is the flattened searchable representation produced once by
// the ingestion collaborator and stored verbatim, so lexical and vector search
// observe identical content. Writes replace the whole row; fields are never
// mutated in place.
type Document struct {
	itemID    string
	tenantID  string
	category  string
	text      string
	embedding []float32
	metadata  map[string]string
}

// New validates and creates a Document.
// Item and tenant IDs: ^[a-zA-Z0-9_-]+$, 1-256 chars. Text: non-empty, max 64KB.
// The embedding dimension is validated against the index configuration in the
// catalog service, not here.
func New(
	itemID, tenantID, category, text string,
	embedding []float32, metadata map[string]string,
) (Document, error) {
	if itemID == "" {
		return Document{}, fmt.Errorf("item ID is required")
	}
	if len(itemID) > 256 {
		return Document{}, fmt.Errorf("item ID too long (max 256)")
	}
	if !idRegex.MatchString(itemID) {
		return Document{}, fmt.Errorf("item ID must be alphanumeric with underscores and hyphens")
	}
	if tenantID == "" {
		return Document{}, fmt.Errorf("tenant ID is required")
	}
	if !idRegex.MatchString(tenantID) {
		return Document{}, fmt.Errorf("tenant ID must be alphanumeric with underscores and hyphens")
	}
	if text == "" {
		return Document{}, fmt.Errorf("text is required")
	}
	if len(text) > MaxTextSize {
		return Document{}, fmt.Errorf("text too large (max %d bytes)", MaxTextSize)
	}
	if len(embedding) == 0 {
		return Document{}, fmt.Errorf("embedding is required")
	}

	return Document{
		itemID:    itemID,
		tenantID:  tenantID,
		category:  category,
		text:      text,
		embedding: cloneVector(embedding),
		metadata:  cloneStringMap(metadata),
	}, nil
}

// Reconstruct creates a Document without validation (storage hydration).
func Reconstruct(
	itemID, tenantID, category, text string,
	embedding []float32, metadata map[string]string,
) Document {
	return Document{
		itemID: itemID, tenantID: tenantID, category: category,
		text: text, embedding: embedding, metadata: metadata,
	}
}

// ItemID returns the stable external item identifier.
func (d *Document) ItemID() string { return d.itemID }

// TenantID returns the owner scope.
func (d *Document) TenantID() string { return d.tenantID }

// Category returns the optional category label.
func (d *Document) Category() string { return d.category }

// Text returns the flattened searchable representation.
func (d *Document) Text() string { return d.text }

// Embedding returns the dense vector.
func (d *Document) Embedding() []float32 { return d.embedding }

// Metadata returns the opaque display payload (never used for ranking).
func (d *Document) Metadata() map[string]string { return d.metadata }

func cloneVector(v []float32) []float32 {
	c := make([]float32, len(v))
	copy(c, v)
	return c
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
