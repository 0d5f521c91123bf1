// Package api exposes the facade's HTTP surface: service creation, metadata
// extraction, table listing, and the upstream health probe.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"omd-facade/internal/domain"
	"omd-facade/internal/extract"
)

// Handler holds the HTTP handlers for the facade endpoints.
type Handler struct {
	svc    *extract.Service
	logger *slog.Logger
}

func NewHandler(svc *extract.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With("component", "api"),
	}
}

// CreateService handles POST /service.
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation("invalid request body: %v", err))
		return
	}
	if req.Name == "" {
		writeError(w, domain.ErrValidation("name is required"))
		return
	}

	msg, err := h.svc.CreateService(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": msg})
}

// ExtractMetadata handles GET /service/{name}/metadata.
func (h *Handler) ExtractMetadata(w http.ResponseWriter, r *http.Request) {
	serviceName := chi.URLParam(r, "name")
	opts := domain.ExtractOptions{
		IncludeSampleData:    boolQuery(r, "include_sample_data", false),
		IncludeTableProfiles: boolQuery(r, "include_table_profiles", false),
		IncludeLineage:       boolQuery(r, "include_lineage", false),
	}

	md, err := h.svc.Extract(r.Context(), serviceName, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, md)
}

// ListTables handles GET /service/{name}/tables.
func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	serviceName := chi.URLParam(r, "name")
	filter := domain.TableFilter{
		IncludeColumns: boolQuery(r, "include_columns", true),
	}
	if v := r.URL.Query().Get("database_name"); v != "" {
		filter.DatabaseName = &v
	}
	if v := r.URL.Query().Get("schema_name"); v != "" {
		filter.SchemaName = &v
	}

	res, err := h.svc.ListTables(r.Context(), serviceName, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Health handles GET /health. Always 200; state lives in the body.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Health(r.Context()))
}

// boolQuery parses a boolean query parameter, falling back to def on a
// missing or unparseable value.
func boolQuery(r *http.Request, key string, def bool) bool {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
