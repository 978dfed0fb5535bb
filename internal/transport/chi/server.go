package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/keeva-cloud/mediadex/internal/domain"
	domdoc "github.com/keeva-cloud/mediadex/internal/domain/document"
	"github.com/keeva-cloud/mediadex/internal/domain/search/hit"
	"github.com/keeva-cloud/mediadex/internal/domain/search/mode"
	"github.com/keeva-cloud/mediadex/internal/domain/search/query"
	"github.com/keeva-cloud/mediadex/internal/metrics"
	cataloguc "github.com/keeva-cloud/mediadex/internal/usecase/catalog"
	healthuc "github.com/keeva-cloud/mediadex/internal/usecase/health"
	retrievaluc "github.com/keeva-cloud/mediadex/internal/usecase/retrieval"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the retrieval engine and catalog over HTTP.
type Server struct {
	retrieval     *retrievaluc.Service
	catalog       *cataloguc.Service
	health        *healthuc.Service
	embedder      domain.Embedder
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. embedder may be nil, in which case
// vector and fused requests must carry a precomputed query embedding.
func NewServer(
	retrieval *retrievaluc.Service,
	catalog *cataloguc.Service,
	health *healthuc.Service,
	embedder domain.Embedder,
	logger *zap.Logger,
) *Server {
	s := &Server{
		retrieval: retrieval,
		catalog:   catalog,
		health:    health,
		embedder:  embedder,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrItemNotFound, http.StatusNotFound, CodeItemNotFound),
		sentinelHandler(domain.ErrVectorDimMismatch, http.StatusBadRequest, CodeVectorDimMismatch),
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, CodeEmbeddingProviderError),
		sentinelHandler(domain.ErrBackendUnavailable, http.StatusServiceUnavailable, CodeBackendUnavailable),
	}
	return s
}

// Register mounts all routes on the given router.
func (s *Server) Register(r chi.Router) {
	r.Post("/api/v1/retrieve", s.Retrieve)
	r.Get("/api/v1/engine", s.Engine)
	r.Put("/api/v1/tenants/{tenantID}/items/{itemID}", s.UpsertItem)
	r.Get("/api/v1/tenants/{tenantID}/items/{itemID}", s.GetItem)
	r.Delete("/api/v1/tenants/{tenantID}/items/{itemID}", s.DeleteItem)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Retrieve handles POST /api/v1/retrieve.
func (s *Server) Retrieve(w http.ResponseWriter, r *http.Request) {
	var req RetrieveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	m := mode.Mode(req.Mode)
	embedding := req.Embedding

	// Vectorize on the caller's behalf when the mode needs an embedding and
	// the request carries none.
	if len(embedding) == 0 && s.embedder != nil && req.Query != "" {
		needsEmbedding := m == "" || m.RequiresEmbedding()
		if needsEmbedding {
			result, err := s.embedder.Embed(r.Context(), req.Query)
			if err != nil {
				s.handleDomainError(w, err)
				return
			}
			embedding = result.Embedding
			w.Header().Set("X-Embedding-Tokens", strconv.Itoa(result.TotalTokens))
		}
	}

	q, err := query.New(
		req.Query, embedding, req.TenantID, req.Category,
		m, req.Limit, req.MinLexicalScore, req.MinSimilarityScore,
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	start := time.Now()
	hits, err := s.retrieval.Retrieve(r.Context(), &q)
	if err != nil {
		metrics.RetrievalRequestsTotal.WithLabelValues(string(q.Mode()), "error").Inc()
		s.handleDomainError(w, err)
		return
	}

	metrics.RetrievalRequestsTotal.WithLabelValues(string(q.Mode()), "success").Inc()
	metrics.RetrievalDuration.WithLabelValues(string(q.Mode())).Observe(time.Since(start).Seconds())
	metrics.RetrievalHitsReturned.WithLabelValues(string(q.Mode())).Observe(float64(len(hits)))

	items := make([]HitItem, len(hits))
	for i := range hits {
		items[i] = hitToItem(&hits[i])
	}

	writeJSON(w, http.StatusOK, RetrieveResponse{
		Items: items,
		Total: len(items),
		Mode:  string(q.Mode()),
	})
}

// Engine handles GET /api/v1/engine.
func (s *Server) Engine(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.retrieval.Describe())
}

// UpsertItem handles PUT /api/v1/tenants/{tenantID}/items/{itemID}.
func (s *Server) UpsertItem(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantID")
	itemID := chi.URLParam(r, "itemID")

	var req UpsertItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doc, err := domdoc.New(itemID, tenantID, req.Category, req.Text, req.Embedding, req.Metadata)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	created, err := s.catalog.Upsert(r.Context(), &doc)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location", fmt.Sprintf("/api/v1/tenants/%s/items/%s", tenantID, itemID))
	}

	writeJSON(w, status, itemToResponse(&doc))
}

// GetItem handles GET /api/v1/tenants/{tenantID}/items/{itemID}.
func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantID")
	itemID := chi.URLParam(r, "itemID")

	doc, err := s.catalog.Get(r.Context(), tenantID, itemID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, itemToResponse(&doc))
}

// DeleteItem handles DELETE /api/v1/tenants/{tenantID}/items/{itemID}.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantID")
	itemID := chi.URLParam(r, "itemID")

	if err := s.catalog.Delete(r.Context(), tenantID, itemID); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func hitToItem(h *hit.Hit) HitItem {
	return HitItem{
		ItemID:    h.ItemID(),
		Score:     h.Score(),
		ScoreKind: string(h.Kind()),
		Rank:      h.Rank(),
		Text:      h.Text(),
		Category:  h.Category(),
		Metadata:  h.Metadata(),
	}
}

func itemToResponse(doc *domdoc.Document) ItemResponse {
	return ItemResponse{
		ItemID:        doc.ItemID(),
		TenantID:      doc.TenantID(),
		Category:      doc.Category(),
		Text:          doc.Text(),
		EmbeddingDims: len(doc.Embedding()),
		Metadata:      doc.Metadata(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrValidation,
		domain.ErrItemNotFound,
		domain.ErrVectorDimMismatch,
		domain.ErrEmbeddingProviderError,
		domain.ErrBackendUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
