package chi

// Error codes returned in the JSON error envelope.
const (
	CodeBadRequest             = "bad_request"
	CodeValidationFailed       = "validation_failed"
	CodeUnauthorized           = "unauthorized"
	CodeItemNotFound           = "item_not_found"
	CodeVectorDimMismatch      = "vector_dim_mismatch"
	CodeEmbeddingProviderError = "embedding_provider_error"
	CodeBackendUnavailable     = "backend_unavailable"
	CodeInternalError          = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RetrieveRequest is the body of POST /api/v1/retrieve.
type RetrieveRequest struct {
	TenantID           string    `json:"tenant_id"`
	Query              string    `json:"query"`
	Embedding          []float32 `json:"embedding,omitempty"`
	Mode               string    `json:"mode,omitempty"`
	Limit              int       `json:"limit,omitempty"`
	Category           string    `json:"category,omitempty"`
	MinLexicalScore    float64   `json:"min_lexical_score,omitempty"`
	MinSimilarityScore float64   `json:"min_similarity_score,omitempty"`
}

// HitItem is a single ranked result in a retrieve response.
type HitItem struct {
	ItemID    string            `json:"item_id"`
	Score     float64           `json:"score"`
	ScoreKind string            `json:"score_kind"`
	Rank      int               `json:"rank"`
	Text      string            `json:"text,omitempty"`
	Category  string            `json:"category,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// RetrieveResponse is the body of a successful retrieve call.
type RetrieveResponse struct {
	Items []HitItem `json:"items"`
	Total int       `json:"total"`
	Mode  string    `json:"mode"`
}

// UpsertItemRequest is the body of PUT /api/v1/tenants/{tenantID}/items/{itemID}.
// The document arrives pre-embedded and fully flattened.
type UpsertItemRequest struct {
	Category  string            `json:"category,omitempty"`
	Text      string            `json:"text"`
	Embedding []float32         `json:"embedding"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// ItemResponse describes a stored document. The embedding is not echoed back.
type ItemResponse struct {
	ItemID        string            `json:"item_id"`
	TenantID      string            `json:"tenant_id"`
	Category      string            `json:"category,omitempty"`
	Text          string            `json:"text"`
	EmbeddingDims int               `json:"embedding_dims"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
