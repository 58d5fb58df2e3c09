// internal/handler/values.go
package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/catalog/internal/assembler"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ValueHandler serves entity values and assembled responses.
type ValueHandler struct {
	scopes ScopeProvider
	logger *slog.Logger
}

func NewValueHandler(scopes ScopeProvider, logger *slog.Logger) *ValueHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ValueHandler{scopes: scopes, logger: logger}
}

// SetValuesRequest holds the values of the submitted fields, keyed by field id.
type SetValuesRequest struct {
	Values map[uuid.UUID]any `json:"values"`
}

type ValuesResponse struct {
	EntityID string            `json:"entity_id"`
	Values   map[uuid.UUID]any `json:"values"`
}

type SectionsResponse struct {
	Sections []assembler.Section `json:"sections"`
}

func (h *ValueHandler) GetValues(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}
	entityID := chi.URLParam(r, "entityID")

	values, err := svc.Values.GetValues(r.Context(), entityID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ValuesResponse{EntityID: entityID, Values: values})
}

// SetValues replaces the entity's values for the submitted fields only
func (h *ValueHandler) SetValues(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}
	entityID := chi.URLParam(r, "entityID")

	var req SetValuesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := svc.Values.SetValues(r.Context(), entityID, req.Values); err != nil {
		handleError(w, h.logger, err)
		return
	}

	values, err := svc.Values.GetValues(r.Context(), entityID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ValuesResponse{EntityID: entityID, Values: values})
}

func (h *ValueHandler) DeleteEntity(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}

	removed, err := svc.Values.DeleteEntity(r.Context(), chi.URLParam(r, "entityID"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

// Response renders the entity's values as ordered sections
func (h *ValueHandler) Response(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}

	sections, err := svc.Values.Response(r.Context(), chi.URLParam(r, "entityID"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SectionsResponse{Sections: sections})
}

// Assemble renders a stored response map posted as the request body. The
// body is decoded preserving key order, which decides ties between sections.
func (h *ValueHandler) Assemble(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	raw, err := assembler.ParseObject(body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Response must be a JSON object")
		return
	}

	sections, err := svc.Values.Assemble(r.Context(), raw)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SectionsResponse{Sections: sections})
}
