package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/dangerclosesec/catalog/internal/repository"
	"github.com/go-chi/chi/v5"
)

type auditLogQuerier interface {
	Query(ctx context.Context, params repository.AuditQueryParams) ([]model.SchemaAuditLog, int64, error)
}

// SchemaAuditLogHandler handles API requests for the schema change history
type SchemaAuditLogHandler struct {
	logs   auditLogQuerier
	logger *slog.Logger
}

// NewSchemaAuditLogHandler creates a new audit log handler
func NewSchemaAuditLogHandler(logs auditLogQuerier, logger *slog.Logger) *SchemaAuditLogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SchemaAuditLogHandler{logs: logs, logger: logger}
}

type AuditLogsResponse struct {
	Logs  []model.SchemaAuditLog `json:"logs"`
	Total int64                  `json:"total"`
}

// GetAuditLogs handles requests to retrieve a scope's audit logs with filtering
func (h *SchemaAuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	scope, err := model.ParseScope(chi.URLParam(r, "scope"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Unknown schema scope")
		return
	}

	q := r.URL.Query()
	params := repository.AuditQueryParams{
		Scope:      scope,
		Action:     q.Get("action"),
		TargetType: q.Get("target_type"),
		TargetID:   q.Get("target_id"),
	}

	if startTimeStr := q.Get("start_time"); startTimeStr != "" {
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err == nil {
			params.StartTime = startTime
		}
	}

	if endTimeStr := q.Get("end_time"); endTimeStr != "" {
		endTime, err := time.Parse(time.RFC3339, endTimeStr)
		if err == nil {
			params.EndTime = endTime
		}
	}

	// Pagination
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	if offsetStr := q.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	logs, total, err := h.logs.Query(r.Context(), params)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, AuditLogsResponse{Logs: logs, Total: total})
}
