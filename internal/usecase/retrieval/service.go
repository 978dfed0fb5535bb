package retrieval

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/keeva-cloud/mediadex/internal/domain"
	"github.com/keeva-cloud/mediadex/internal/domain/search/hit"
	"github.com/keeva-cloud/mediadex/internal/domain/search/mode"
	"github.com/keeva-cloud/mediadex/internal/domain/search/query"
)

// Service is the retrieval facade: it routes a validated query to the source
// retrievers, fuses when asked, and shapes the final ranked list.
type Service struct {
	repo   Repository
	tuning Tuning
}

// New creates a retrieval service.
func New(repo Repository, t Tuning) *Service {
	return &Service{repo: repo, tuning: t}
}

// Retrieve executes the query in its requested mode and returns at most
// q.Limit() hits with 1-based ranks. An empty corpus or a query matching
// nothing yields an empty list, not an error.
func (s *Service) Retrieve(ctx context.Context, q *query.Query) ([]hit.Hit, error) {
	var hits []hit.Hit
	var err error

	switch q.Mode() {
	case mode.Lexical:
		hits, err = s.repo.LexicalSearch(ctx, q, s.fetchSize(q))
	case mode.Vector:
		hits, err = s.repo.VectorSearch(ctx, q, s.fetchSize(q))
	case mode.Fused:
		hits, err = s.retrieveFused(ctx, q)
	default:
		return nil, fmt.Errorf("%w: unsupported retrieval mode %q", domain.ErrValidation, q.Mode())
	}
	if err != nil {
		return nil, err
	}

	if len(hits) > q.Limit() {
		hits = hits[:q.Limit()]
	}

	return rankHits(hits), nil
}

// retrieveFused runs both retrievers concurrently and merges via weighted RRF.
// If either source fails the whole call fails; a silent downgrade to
// single-source results would change ranking semantics without telling the
// caller.
func (s *Service) retrieveFused(ctx context.Context, q *query.Query) ([]hit.Hit, error) {
	topK := s.fetchSize(q)

	var lexHits, vecHits []hit.Hit

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lexHits, err = s.repo.LexicalSearch(gctx, q, topK)
		return err
	})
	g.Go(func() error {
		var err error
		vecHits, err = s.repo.VectorSearch(gctx, q, topK)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return fuseRRF(lexHits, vecHits, s.tuning), nil
}

// fetchSize over-fetches per source so the fused list still fills the limit
// after dedup and floor exclusion.
func (s *Service) fetchSize(q *query.Query) int {
	return q.Limit() * s.tuning.OverfetchFactor()
}

func rankHits(hits []hit.Hit) []hit.Hit {
	ranked := make([]hit.Hit, len(hits))
	for i, h := range hits {
		ranked[i] = h.WithRank(i + 1)
	}
	return ranked
}

// Description reports the engine's effective retrieval configuration for
// introspection endpoints.
type Description struct {
	Modes           []string `json:"modes"`
	LexicalWeight   float64  `json:"lexical_weight"`
	VectorWeight    float64  `json:"vector_weight"`
	RRFConstant     int      `json:"rrf_constant"`
	OverfetchFactor int      `json:"overfetch_factor"`
	DefaultLimit    int      `json:"default_limit"`
	MaxLimit        int      `json:"max_limit"`
}

// Describe returns the active tuning and limits.
func (s *Service) Describe() Description {
	return Description{
		Modes:           []string{string(mode.Lexical), string(mode.Vector), string(mode.Fused)},
		LexicalWeight:   s.tuning.LexicalWeight(),
		VectorWeight:    s.tuning.VectorWeight(),
		RRFConstant:     s.tuning.RRFConstant(),
		OverfetchFactor: s.tuning.OverfetchFactor(),
		DefaultLimit:    query.DefaultLimit,
		MaxLimit:        query.MaxLimit,
	}
}
