package corpus

import (
	"context"
	"fmt"
	"strings"

	"github.com/keeva-cloud/mediadex/internal/db"
	"github.com/keeva-cloud/mediadex/internal/domain"
	"github.com/keeva-cloud/mediadex/internal/domain/search/hit"
	"github.com/keeva-cloud/mediadex/internal/domain/search/query"
)

// store is the consumer interface for search operations (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	SearchBM25(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// returnFields are the hash fields hydrated into hits. The vector itself is
// never returned to callers.
var returnFields = []string{"content", "category", "meta", "__vector_score"}

// Repo runs the two source retrievals over the shared corpus index. Tenant and
// category predicates are pushed into the store query; score floors exclude
// hits after retrieval without rescoring the survivors.
type Repo struct {
	store store
	dims  int
}

// New creates a corpus repository. dims is the configured index embedding
// dimension, used to reject mismatched query vectors before any backend call.
func New(s store, dims int) *Repo {
	return &Repo{store: s, dims: dims}
}

// LexicalSearch returns the topK BM25-ranked candidates for the query text.
// Hits scoring strictly below the query's lexical floor are dropped.
func (r *Repo) LexicalSearch(ctx context.Context, q *query.Query, topK int) ([]hit.Hit, error) {
	tokens := tokenize(q.Text())
	if len(tokens) == 0 {
		return nil, nil
	}

	sr, err := r.store.SearchBM25(ctx, &db.TextQuery{
		IndexName:    domain.IndexName,
		Visibility:   visibility(q),
		Tokens:       tokens,
		TopK:         topK,
		ReturnFields: returnFields,
	})
	if err != nil {
		return nil, retrieverErr("lexical", q, err)
	}

	return parseEntries(sr, hit.KindLexical, q.MinLexical()), nil
}

// VectorSearch returns the topK nearest candidates by cosine similarity.
// Hits scoring strictly below the query's similarity floor are dropped.
func (r *Repo) VectorSearch(ctx context.Context, q *query.Query, topK int) ([]hit.Hit, error) {
	if r.dims > 0 && len(q.Embedding()) != r.dims {
		return nil, &domain.RetrieverError{
			Source:   "vector",
			Mode:     string(q.Mode()),
			TenantID: q.TenantID(),
			Err: fmt.Errorf("%w: query has %d dimensions, index expects %d",
				domain.ErrVectorDimMismatch, len(q.Embedding()), r.dims),
		}
	}

	sr, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    domain.IndexName,
		Visibility:   visibility(q),
		Vector:       q.Embedding(),
		K:            topK,
		ReturnFields: returnFields,
	})
	if err != nil {
		return nil, retrieverErr("vector", q, err)
	}

	return parseEntries(sr, hit.KindSimilarity, q.MinSimilarity()), nil
}

func visibility(q *query.Query) db.Visibility {
	return db.Visibility{TenantID: q.TenantID(), Category: q.Category()}
}

// tokenize splits query text on whitespace. Index-side tokenization handles
// stemming and case; this only shapes the OR-joined term list.
func tokenize(text string) []string {
	return strings.Fields(text)
}

func retrieverErr(source string, q *query.Query, err error) error {
	return &domain.RetrieverError{
		Source:   source,
		Mode:     string(q.Mode()),
		TenantID: q.TenantID(),
		Err:      fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err),
	}
}
