package retrieval

import (
	"context"

	"github.com/keeva-cloud/mediadex/internal/domain/search/hit"
	"github.com/keeva-cloud/mediadex/internal/domain/search/query"
)

// Repository defines the storage contract for the two source retrievers. Both
// run against the same corpus; implementations push tenant and category
// predicates into the backend query and apply score floors before returning.
type Repository interface {
	LexicalSearch(ctx context.Context, q *query.Query, topK int) ([]hit.Hit, error)
	VectorSearch(ctx context.Context, q *query.Query, topK int) ([]hit.Hit, error)
}
