package mediadex

import (
	"context"
	"errors"
	"testing"
)

func TestNew_NoAddress(t *testing.T) {
	_, err := New()
	if err == nil {
		t.Fatal("expected error when no address provided")
	}
}

func TestEmbedderAdapter(t *testing.T) {
	called := false
	mock := &mockEmbedder{
		fn: func(_ context.Context, text string) (EmbeddingResult, error) {
			called = true
			return EmbeddingResult{
				Embedding:    []float32{1, 2, 3},
				PromptTokens: 5,
				TotalTokens:  10,
			}, nil
		},
	}

	adapter := &embedderAdapter{inner: mock}
	result, err := adapter.Embed(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("inner embedder was not called")
	}
	if len(result.Embedding) != 3 {
		t.Errorf("embedding len = %d, want 3", len(result.Embedding))
	}
	if result.TotalTokens != 10 {
		t.Errorf("total tokens = %d, want 10", result.TotalTokens)
	}
}

func TestEmbedderAdapter_Error(t *testing.T) {
	mock := &mockEmbedder{
		fn: func(_ context.Context, _ string) (EmbeddingResult, error) {
			return EmbeddingResult{}, errors.New("provider down")
		},
	}

	adapter := &embedderAdapter{inner: mock}
	_, err := adapter.Embed(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error from adapter")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithRedis("localhost:6379", "secret")(cfg)
	if cfg.addrs[0] != "localhost:6379" {
		t.Errorf("addr = %q, want localhost:6379", cfg.addrs[0])
	}
	if cfg.password != "secret" {
		t.Errorf("password = %q, want secret", cfg.password)
	}

	WithUsername("svc")(cfg)
	if cfg.username != "svc" {
		t.Errorf("username = %q, want svc", cfg.username)
	}

	WithVectorDimensions(768)(cfg)
	if cfg.vectorDimensions != 768 {
		t.Errorf("vectorDimensions = %d, want 768", cfg.vectorDimensions)
	}

	WithHNSW(32, 400)(cfg)
	if cfg.hnswM != 32 || cfg.hnswEFConstruct != 400 {
		t.Errorf("hnsw = (%d, %d), want (32, 400)", cfg.hnswM, cfg.hnswEFConstruct)
	}

	WithFusionWeights(0.5, 0.5)(cfg)
	if cfg.lexicalWeight != 0.5 || cfg.vectorWeight != 0.5 {
		t.Errorf("weights = (%g, %g), want (0.5, 0.5)", cfg.lexicalWeight, cfg.vectorWeight)
	}

	WithRRFConstant(60)(cfg)
	if cfg.rrfConstant != 60 {
		t.Errorf("rrfConstant = %d, want 60", cfg.rrfConstant)
	}

	WithOverfetchFactor(3)(cfg)
	if cfg.overfetchFactor != 3 {
		t.Errorf("overfetchFactor = %d, want 3", cfg.overfetchFactor)
	}
}

func TestClient_Close_NilStore(t *testing.T) {
	c := &Client{store: nil}
	c.Close()
}

func TestWithEmbedder(t *testing.T) {
	mock := &mockEmbedder{
		fn: func(_ context.Context, _ string) (EmbeddingResult, error) {
			return EmbeddingResult{}, nil
		},
	}
	cfg := &clientConfig{}
	WithEmbedder(mock)(cfg)
	if cfg.embedder == nil {
		t.Error("expected non-nil embedder")
	}
}

type mockEmbedder struct {
	fn func(ctx context.Context, text string) (EmbeddingResult, error)
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) (EmbeddingResult, error) {
	return m.fn(ctx, text)
}
