package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/catalog/internal/audit"
	"github.com/dangerclosesec/catalog/internal/domain"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/dangerclosesec/catalog/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Sort clauses giving a deterministic sibling order.
var byOrderIndex = []string{"order_index ASC", "created_at ASC"}

// SchemaService manages the module and field definitions of one scope.
type SchemaService struct {
	scope    model.Scope
	store    repository.Store
	auditor  audit.Logger
	logger   *slog.Logger
	validate *validator.Validate
}

func NewSchemaService(scope model.Scope, store repository.Store, auditor audit.Logger, logger *slog.Logger) *SchemaService {
	if auditor == nil {
		auditor = &audit.NoOpLogger{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SchemaService{
		scope:    scope,
		store:    store,
		auditor:  auditor,
		logger:   logger,
		validate: validator.New(),
	}
}

type CreateModuleInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type UpdateModuleInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type CreateFieldInput struct {
	ModuleID    uuid.UUID       `json:"module_id"`
	Name        string          `json:"name" validate:"required"`
	FieldKey    string          `json:"field_key" validate:"required"`
	FieldType   model.FieldType `json:"field_type" validate:"required"`
	Options     []string        `json:"options"`
	IsRequired  bool            `json:"is_required"`
	Description *string         `json:"description"`
}

type UpdateFieldInput struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	FieldKey    *string          `json:"field_key" validate:"omitempty,min=1"`
	FieldType   *model.FieldType `json:"field_type"`
	Options     *[]string        `json:"options"`
	IsRequired  *bool            `json:"is_required"`
	Description *string          `json:"description"`
	IsActive    *bool            `json:"is_active"`
}

// NormalizeFieldKey lower-cases key and collapses whitespace runs to "_".
func NormalizeFieldKey(key string) string {
	return strings.Join(strings.Fields(strings.ToLower(key)), "_")
}

// CreateModule appends a new active module to the end of the scope.
func (s *SchemaService) CreateModule(ctx context.Context, input CreateModuleInput) (*model.Module, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.store.Modules().Query(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("counting modules: %w", err)
	}

	module := &model.Module{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		OrderIndex:  len(existing),
		IsActive:    true,
	}
	if err := s.store.Modules().Insert(ctx, module); err != nil {
		return nil, fmt.Errorf("creating module: %w", err)
	}

	s.record(ctx, model.ActionModuleCreate, "module", module.ID, map[string]interface{}{
		"name":        module.Name,
		"order_index": module.OrderIndex,
	})
	return module, nil
}

func (s *SchemaService) GetModule(ctx context.Context, id uuid.UUID) (*model.Module, error) {
	return s.store.Modules().Get(ctx, id)
}

// ListModules returns the scope's modules in display order.
func (s *SchemaService) ListModules(ctx context.Context, activeOnly bool) ([]*model.Module, error) {
	var filter repository.Filter
	if activeOnly {
		filter = repository.Filter{"is_active": true}
	}
	modules, err := s.store.Modules().Query(ctx, filter, byOrderIndex...)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}
	return modules, nil
}

func (s *SchemaService) UpdateModule(ctx context.Context, id uuid.UUID, input UpdateModuleInput) (*model.Module, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	patch := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: module name is required", domain.ErrInvalidInput)
		}
		patch["name"] = name
	}
	if input.Description != nil {
		patch["description"] = *input.Description
	}
	if input.IsActive != nil {
		patch["is_active"] = *input.IsActive
	}
	if len(patch) == 0 {
		return s.store.Modules().Get(ctx, id)
	}

	module, err := s.store.Modules().Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("updating module: %w", err)
	}

	s.record(ctx, model.ActionModuleUpdate, "module", id, patch)
	return module, nil
}

// DeleteModule removes a module together with its fields and their values,
// then closes the gap in the scope's module order. A failure part way through
// on a store without transactions must be retried as a whole.
func (s *SchemaService) DeleteModule(ctx context.Context, id uuid.UUID) error {
	var removedFields int
	_, err := repository.Atomic(ctx, s.store, func(st repository.Store) error {
		if _, err := st.Modules().Get(ctx, id); err != nil {
			return err
		}

		fields, err := st.Fields().Query(ctx, repository.Filter{"module_id": id})
		if err != nil {
			return fmt.Errorf("finding module fields: %w", err)
		}

		fieldIDs := make([]uuid.UUID, 0, len(fields))
		for _, f := range fields {
			fieldIDs = append(fieldIDs, f.ID)
		}
		if err := deleteValuesOf(ctx, st, fieldIDs); err != nil {
			return err
		}

		for _, f := range fields {
			if err := st.Fields().Delete(ctx, f.ID); err != nil {
				return fmt.Errorf("deleting field %s: %w", f.ID, err)
			}
		}
		removedFields = len(fields)

		if err := st.Modules().Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting module: %w", err)
		}

		return densifyModules(ctx, st)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("module cascade delete failed", "scope", s.scope, "module", id, "error", err)
		}
		return err
	}

	s.record(ctx, model.ActionModuleDelete, "module", id, map[string]interface{}{
		"fields_removed": removedFields,
	})
	return nil
}

// CreateField appends a new active field to the end of its module.
func (s *SchemaService) CreateField(ctx context.Context, input CreateFieldInput) (*model.Field, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	if input.ModuleID == uuid.Nil {
		return nil, fmt.Errorf("%w: module_id is required", domain.ErrInvalidInput)
	}

	key := NormalizeFieldKey(input.FieldKey)
	if key == "" {
		return nil, fmt.Errorf("%w: field_key is required", domain.ErrInvalidInput)
	}

	options, err := fieldOptions(input.FieldType, input.Options)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.Modules().Get(ctx, input.ModuleID); err != nil {
		return nil, err
	}

	siblings, err := s.store.Fields().Query(ctx, repository.Filter{"module_id": input.ModuleID})
	if err != nil {
		return nil, fmt.Errorf("finding module fields: %w", err)
	}
	if keyTaken(siblings, key, uuid.Nil) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateKey, key)
	}

	field := &model.Field{
		ModuleID:    input.ModuleID,
		Name:        strings.TrimSpace(input.Name),
		FieldKey:    key,
		FieldType:   input.FieldType,
		Options:     options,
		Description: input.Description,
		IsRequired:  input.IsRequired,
		OrderIndex:  len(siblings),
		IsActive:    true,
	}
	if err := s.store.Fields().Insert(ctx, field); err != nil {
		return nil, fmt.Errorf("creating field: %w", err)
	}

	s.record(ctx, model.ActionFieldCreate, "field", field.ID, map[string]interface{}{
		"module_id":  field.ModuleID.String(),
		"field_key":  field.FieldKey,
		"field_type": string(field.FieldType),
	})
	return field, nil
}

func (s *SchemaService) GetField(ctx context.Context, id uuid.UUID) (*model.Field, error) {
	return s.store.Fields().Get(ctx, id)
}

// ListFields returns a module's fields in display order.
func (s *SchemaService) ListFields(ctx context.Context, moduleID uuid.UUID, activeOnly bool) ([]*model.Field, error) {
	if _, err := s.store.Modules().Get(ctx, moduleID); err != nil {
		return nil, err
	}

	filter := repository.Filter{"module_id": moduleID}
	if activeOnly {
		filter["is_active"] = true
	}
	fields, err := s.store.Fields().Query(ctx, filter, byOrderIndex...)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}
	return fields, nil
}

// UpdateField edits a field definition. Key uniqueness is re-checked only when
// the key changes, and options are re-validated against the resulting type.
// Stored values are not migrated when the type changes.
func (s *SchemaService) UpdateField(ctx context.Context, id uuid.UUID, input UpdateFieldInput) (*model.Field, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	field, err := s.store.Fields().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := map[string]any{}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: field name is required", domain.ErrInvalidInput)
		}
		patch["name"] = name
	}

	if input.FieldKey != nil {
		key := NormalizeFieldKey(*input.FieldKey)
		if key == "" {
			return nil, fmt.Errorf("%w: field_key is required", domain.ErrInvalidInput)
		}
		if key != field.FieldKey {
			siblings, err := s.store.Fields().Query(ctx, repository.Filter{"module_id": field.ModuleID})
			if err != nil {
				return nil, fmt.Errorf("finding module fields: %w", err)
			}
			if keyTaken(siblings, key, field.ID) {
				return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateKey, key)
			}
			patch["field_key"] = key
		}
	}

	if input.FieldType != nil || input.Options != nil {
		ft := field.FieldType
		if input.FieldType != nil {
			ft = *input.FieldType
		}
		opts := []string(field.Options)
		if input.Options != nil {
			opts = *input.Options
		}
		options, err := fieldOptions(ft, opts)
		if err != nil {
			return nil, err
		}
		patch["field_type"] = ft
		patch["options"] = options
	}

	if input.IsRequired != nil {
		patch["is_required"] = *input.IsRequired
	}
	if input.Description != nil {
		patch["description"] = *input.Description
	}
	if input.IsActive != nil {
		patch["is_active"] = *input.IsActive
	}
	if len(patch) == 0 {
		return field, nil
	}

	updated, err := s.store.Fields().Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("updating field: %w", err)
	}

	s.record(ctx, model.ActionFieldUpdate, "field", id, patch)
	return updated, nil
}

// DeleteField removes a field and its values, then closes the gap in its
// module's field order.
func (s *SchemaService) DeleteField(ctx context.Context, id uuid.UUID) error {
	var moduleID uuid.UUID
	_, err := repository.Atomic(ctx, s.store, func(st repository.Store) error {
		field, err := st.Fields().Get(ctx, id)
		if err != nil {
			return err
		}
		moduleID = field.ModuleID

		if err := deleteValuesOf(ctx, st, []uuid.UUID{id}); err != nil {
			return err
		}
		if err := st.Fields().Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting field: %w", err)
		}

		return densifyFields(ctx, st, field.ModuleID)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("field cascade delete failed", "scope", s.scope, "field", id, "error", err)
		}
		return err
	}

	s.record(ctx, model.ActionFieldDelete, "field", id, map[string]interface{}{
		"module_id": moduleID.String(),
	})
	return nil
}

func (s *SchemaService) validateInput(input any) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func (s *SchemaService) record(ctx context.Context, action, targetType string, id uuid.UUID, details map[string]interface{}) {
	_ = s.auditor.LogSchemaChange(ctx, audit.Change{
		Scope:      s.scope,
		Action:     action,
		TargetType: targetType,
		TargetID:   id.String(),
		Actor:      audit.ActorFrom(ctx),
		Details:    details,
	})
}

// fieldOptions validates the options of a field type. Choice types need at
// least one non-blank option; every other type stores none.
func fieldOptions(ft model.FieldType, options []string) (pq.StringArray, error) {
	if !ft.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFieldType, ft)
	}
	if !ft.RequiresOptions() {
		return nil, nil
	}

	clean := make(pq.StringArray, 0, len(options))
	for _, opt := range options {
		if opt = strings.TrimSpace(opt); opt != "" {
			clean = append(clean, opt)
		}
	}
	if len(clean) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidOptions, ft)
	}
	return clean, nil
}

func keyTaken(siblings []*model.Field, key string, self uuid.UUID) bool {
	for _, f := range siblings {
		if f.ID != self && NormalizeFieldKey(f.FieldKey) == key {
			return true
		}
	}
	return false
}

func deleteValuesOf(ctx context.Context, st repository.Store, fieldIDs []uuid.UUID) error {
	if len(fieldIDs) == 0 {
		return nil
	}
	values, err := st.Values().Query(ctx, repository.Filter{"field_id": fieldIDs})
	if err != nil {
		return fmt.Errorf("finding field values: %w", err)
	}
	for _, v := range values {
		if err := st.Values().Delete(ctx, v.ID); err != nil {
			return fmt.Errorf("deleting value %s: %w", v.ID, err)
		}
	}
	return nil
}
