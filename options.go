package mediadex

import "context"

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	addrs    []string
	username string
	password string

	embedder Embedder

	vectorDimensions int
	hnswM            int
	hnswEFConstruct  int

	lexicalWeight   float64
	vectorWeight    float64
	rrfConstant     int
	overfetchFactor int
}

// Embedder is the public text vectorization contract. Optional: without one
// the client only accepts pre-embedded queries.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// EmbeddingResult carries an embedding vector and token usage.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithUsername sets the Redis ACL username.
func WithUsername(username string) Option {
	return func(c *clientConfig) {
		c.username = username
	}
}

// WithEmbedder sets the query embedding provider.
// Without one, vector and fused retrieval require a precomputed embedding.
func WithEmbedder(e Embedder) Option {
	return func(c *clientConfig) {
		c.embedder = e
	}
}

// WithVectorDimensions sets the corpus embedding dimension.
// Defaults to 1536 (text-embedding-3-small).
func WithVectorDimensions(dim int) Option {
	return func(c *clientConfig) {
		c.vectorDimensions = dim
	}
}

// WithHNSW configures HNSW index build parameters (M and EF construction).
// Defaults: M=16, EFConstruct=200.
func WithHNSW(m, efConstruct int) Option {
	return func(c *clientConfig) {
		c.hnswM = m
		c.hnswEFConstruct = efConstruct
	}
}

// WithFusionWeights sets the RRF source weights. They must be non-negative
// and sum to 1.0. Defaults: lexical 0.3, vector 0.7.
func WithFusionWeights(lexical, vector float64) Option {
	return func(c *clientConfig) {
		c.lexicalWeight = lexical
		c.vectorWeight = vector
	}
}

// WithRRFConstant sets the rank-smoothing constant. Default: 15.
func WithRRFConstant(k int) Option {
	return func(c *clientConfig) {
		c.rrfConstant = k
	}
}

// WithOverfetchFactor sets the per-source over-fetch multiplier used in fused
// mode. Default: 2.
func WithOverfetchFactor(f int) Option {
	return func(c *clientConfig) {
		c.overfetchFactor = f
	}
}
