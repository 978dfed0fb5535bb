package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation signals a malformed or incomplete request. Never retryable.
	ErrValidation = errors.New("validation failed")
	// ErrVectorDimMismatch signals a query embedding whose dimension does not
	// match the configured index dimension. A configuration error, not a
	// retryable condition.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrBackendUnavailable signals that the corpus store could not be reached
	// or timed out. Retry policy belongs to the caller.
	ErrBackendUnavailable = errors.New("corpus store unavailable")
	// ErrItemNotFound signals a missing catalog item.
	ErrItemNotFound = errors.New("item not found")
	// ErrEmbeddingProviderError signals a query-embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)

// RetrieverError wraps a backend failure with enough context for the caller to
// log and decide on fallback UX: which retrieval mode was requested, which
// tenant the query was scoped to, and which source retriever failed.
type RetrieverError struct {
	Source   string // "lexical" or "vector"
	Mode     string
	TenantID string
	Err      error
}

func (e *RetrieverError) Error() string {
	return fmt.Sprintf("%s retriever (mode=%s, tenant=%s): %v", e.Source, e.Mode, e.TenantID, e.Err)
}

func (e *RetrieverError) Unwrap() error { return e.Err }
