package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/catalog"
	"github.com/dangerclosesec/catalog/internal/domain"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	BaseResponse
	Error   string      `json:"error"`
	Details *[]string   `json:"details,omitempty"`
	Current []uuid.UUID `json:"current,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// ScopeProvider returns the services of a schema scope.
type ScopeProvider interface {
	Scope(s model.Scope) (*catalog.Services, error)
}

// services resolves the {scope} URL parameter, writing a 404 when unknown.
func services(w http.ResponseWriter, r *http.Request, provider ScopeProvider) (*catalog.Services, bool) {
	scope, err := model.ParseScope(chi.URLParam(r, "scope"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Unknown schema scope")
		return nil, false
	}
	svc, err := provider.Scope(scope)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Unknown schema scope")
		return nil, false
	}
	return svc, true
}

// pathID parses the named URL parameter as a uuid, writing a 400 when invalid.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// handleError maps domain errors to HTTP responses.
func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var partial *domain.PartialReorderError
	switch {
	case errors.As(err, &partial):
		respondWithJSON(w, http.StatusConflict, ErrorResponse{
			Error:   "Reorder partially applied; showing stored order",
			Current: partial.Current,
		})
	case errors.Is(err, domain.ErrModuleNotFound):
		respondWithError(w, http.StatusNotFound, "Module not found")
	case errors.Is(err, domain.ErrFieldNotFound):
		respondWithError(w, http.StatusNotFound, "Field not found")
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrDuplicateKey):
		respondWithError(w, http.StatusConflict, "Field key already exists in module")
	case errors.Is(err, domain.ErrInvalidOptions):
		respondWithError(w, http.StatusBadRequest, "Field type requires at least one option")
	case errors.Is(err, domain.ErrInvalidFieldType):
		respondWithError(w, http.StatusBadRequest, "Invalid field type")
	case errors.Is(err, domain.ErrInvalidReorder):
		respondWithError(w, http.StatusBadRequest, "Ordering must list every current member exactly once")
	case errors.Is(err, domain.ErrInvalidScope):
		respondWithError(w, http.StatusNotFound, "Unknown schema scope")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("request failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
