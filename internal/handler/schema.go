// internal/handler/schema.go
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dangerclosesec/catalog/internal/service"
	"github.com/google/uuid"
)

// SchemaHandler serves module and field definitions and their ordering.
type SchemaHandler struct {
	scopes ScopeProvider
	logger *slog.Logger
}

func NewSchemaHandler(scopes ScopeProvider, logger *slog.Logger) *SchemaHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SchemaHandler{scopes: scopes, logger: logger}
}

// ReorderRequest carries the complete new order of a module's or scope's members.
type ReorderRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// MoveRequest moves one member to a new position.
type MoveRequest struct {
	To int `json:"to"`
}

// OrderResponse reports the stored order after a reorder.
type OrderResponse struct {
	BaseResponse
	IDs []uuid.UUID `json:"ids"`
}

func activeOnly(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("active"))
	return err == nil && v
}

// ListModules returns the scope's modules in display order
func (h *SchemaHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}

	modules, err := svc.Schema.ListModules(r.Context(), activeOnly(r))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, modules)
}

func (h *SchemaHandler) CreateModule(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}

	var input service.CreateModuleInput
	if !decodeBody(w, r, &input) {
		return
	}

	module, err := svc.Schema.CreateModule(r.Context(), input)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, module)
}

func (h *SchemaHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	module, err := svc.Schema.GetModule(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, module)
}

func (h *SchemaHandler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var input service.UpdateModuleInput
	if !decodeBody(w, r, &input) {
		return
	}

	module, err := svc.Schema.UpdateModule(r.Context(), id, input)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, module)
}

// DeleteModule removes a module with its fields and values
func (h *SchemaHandler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := svc.Schema.DeleteModule(r.Context(), id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SchemaHandler) ReorderModules(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}

	var req ReorderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := svc.Ordering.ReorderModules(r.Context(), req.IDs); err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, OrderResponse{BaseResponse{Ok: true}, req.IDs})
}

func (h *SchemaHandler) MoveModule(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req MoveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order, err := svc.Ordering.MoveModule(r.Context(), id, req.To)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, OrderResponse{BaseResponse{Ok: true}, order})
}

// ListFields returns a module's fields in display order
func (h *SchemaHandler) ListFields(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}
	moduleID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	fields, err := svc.Schema.ListFields(r.Context(), moduleID, activeOnly(r))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, fields)
}

func (h *SchemaHandler) CreateField(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}
	moduleID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var input service.CreateFieldInput
	if !decodeBody(w, r, &input) {
		return
	}
	input.ModuleID = moduleID

	field, err := svc.Schema.CreateField(r.Context(), input)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, field)
}

func (h *SchemaHandler) ReorderFields(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}
	moduleID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req ReorderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := svc.Ordering.ReorderFields(r.Context(), moduleID, req.IDs); err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, OrderResponse{BaseResponse{Ok: true}, req.IDs})
}

// MoveField drags one field to a new position within its module
func (h *SchemaHandler) MoveField(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}
	moduleID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	fieldID, ok := pathID(w, r, "fieldID")
	if !ok {
		return
	}

	var req MoveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order, err := svc.Ordering.MoveField(r.Context(), moduleID, fieldID, req.To)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, OrderResponse{BaseResponse{Ok: true}, order})
}

func (h *SchemaHandler) GetField(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	field, err := svc.Schema.GetField(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, field)
}

func (h *SchemaHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var input service.UpdateFieldInput
	if !decodeBody(w, r, &input) {
		return
	}

	field, err := svc.Schema.UpdateField(r.Context(), id, input)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, field)
}

// DeleteField removes a field and its values
func (h *SchemaHandler) DeleteField(w http.ResponseWriter, r *http.Request) {
	svc, ok := services(w, r, h.scopes)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := svc.Schema.DeleteField(r.Context(), id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
