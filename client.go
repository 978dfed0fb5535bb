package mediadex

import (
	"context"
	"errors"
	"fmt"
	"time"

	dbRedis "github.com/keeva-cloud/mediadex/internal/db/redis"
	"github.com/keeva-cloud/mediadex/internal/domain"
	catalogrepo "github.com/keeva-cloud/mediadex/internal/repository/catalog"
	corpusrepo "github.com/keeva-cloud/mediadex/internal/repository/corpus"
	cataloguc "github.com/keeva-cloud/mediadex/internal/usecase/catalog"
	retrievaluc "github.com/keeva-cloud/mediadex/internal/usecase/retrieval"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultDimensions       = 1536
)

// Client is the mediadex SDK entry point: the hybrid retrieval engine as an
// embeddable library.
type Client struct {
	store        *dbRedis.Store
	retrievalSvc *retrievaluc.Service
	catalogSvc   *cataloguc.Service
	embedder     domain.Embedder
}

// New creates a mediadex Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		vectorDimensions: defaultDimensions,
		lexicalWeight:    retrievaluc.DefaultLexicalWeight,
		vectorWeight:     retrievaluc.DefaultVectorWeight,
		rrfConstant:      retrievaluc.DefaultRRFConstant,
		overfetchFactor:  retrievaluc.DefaultOverfetchFactor,
	}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("mediadex: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("mediadex: create redis store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("mediadex: database not ready: %w", err)
	}

	return wireClient(store, cfg)
}

func wireClient(store *dbRedis.Store, cfg *clientConfig) (*Client, error) {
	tuning, err := retrievaluc.NewTuning(
		cfg.lexicalWeight, cfg.vectorWeight, cfg.rrfConstant, cfg.overfetchFactor,
	)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("mediadex: %w", err)
	}

	corpusRepo := corpusrepo.New(store, cfg.vectorDimensions)
	catRepo := catalogrepo.New(store)

	var emb domain.Embedder
	if cfg.embedder != nil {
		emb = &embedderAdapter{inner: cfg.embedder}
	}

	return &Client{
		store:        store,
		retrievalSvc: retrievaluc.New(corpusRepo, tuning),
		catalogSvc: cataloguc.New(catRepo, cataloguc.IndexParams{
			Dims:            cfg.vectorDimensions,
			HNSWM:           cfg.hnswM,
			HNSWEFConstruct: cfg.hnswEFConstruct,
		}),
		embedder: emb,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// EnsureIndex creates the shared corpus index if missing (idempotent).
func (c *Client) EnsureIndex(ctx context.Context) error {
	if err := c.catalogSvc.EnsureIndex(ctx); err != nil {
		return fmt.Errorf("ensure index: %w", err)
	}
	return nil
}

// embedderAdapter wraps the public Embedder to satisfy internal domain.Embedder.
type embedderAdapter struct {
	inner Embedder
}

func (a *embedderAdapter) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	r, err := a.inner.Embed(ctx, text)
	if err != nil {
		return domain.EmbeddingResult{}, fmt.Errorf("embed: %w", err)
	}
	return domain.EmbeddingResult{
		Embedding:    r.Embedding,
		PromptTokens: r.PromptTokens,
		TotalTokens:  r.TotalTokens,
	}, nil
}
