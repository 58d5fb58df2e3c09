package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/catalog/internal/assembler"
	"github.com/dangerclosesec/catalog/internal/coerce"
	"github.com/dangerclosesec/catalog/internal/domain"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/dangerclosesec/catalog/internal/repository"
	"github.com/google/uuid"
)

// ValueService stores and reads the field values attached to entity instances.
type ValueService struct {
	scope  model.Scope
	store  repository.Store
	logger *slog.Logger
}

func NewValueService(scope model.Scope, store repository.Store, logger *slog.Logger) *ValueService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ValueService{scope: scope, store: store, logger: logger}
}

// SetValues replaces the entity's values for exactly the submitted fields.
// Values of fields outside the submitted set are left untouched. An empty
// value clears the field.
func (s *ValueService) SetValues(ctx context.Context, entityID string, values map[uuid.UUID]any) error {
	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return fmt.Errorf("%w: entity id is required", domain.ErrInvalidInput)
	}
	if len(values) == 0 {
		return nil
	}

	fields := make(map[uuid.UUID]*model.Field, len(values))
	for id := range values {
		field, err := s.store.Fields().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("resolving field %s: %w", id, err)
		}
		fields[id] = field
	}

	rows := make([]*model.Value, 0, len(values))
	for id, v := range values {
		if coerce.IsEmpty(v) {
			continue
		}
		raw := coerce.Encode(fields[id].FieldType, v)
		if raw == "" {
			continue
		}
		rows = append(rows, &model.Value{EntityID: entityID, FieldID: id, RawValue: raw})
	}

	fieldIDs := make([]uuid.UUID, 0, len(fields))
	for id := range fields {
		fieldIDs = append(fieldIDs, id)
	}

	_, err := repository.Atomic(ctx, s.store, func(st repository.Store) error {
		prior, err := st.Values().Query(ctx, repository.Filter{"entity_id": entityID, "field_id": fieldIDs})
		if err != nil {
			return fmt.Errorf("finding prior values: %w", err)
		}
		for _, v := range prior {
			if err := st.Values().Delete(ctx, v.ID); err != nil {
				return fmt.Errorf("deleting value %s: %w", v.ID, err)
			}
		}
		for _, row := range rows {
			if err := st.Values().Insert(ctx, row); err != nil {
				return fmt.Errorf("storing value of field %s: %w", row.FieldID, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("saving entity values failed", "scope", s.scope, "entity", entityID, "error", err)
		return err
	}
	return nil
}

// GetValues returns the entity's values decoded with each field's current type.
// Values whose field no longer exists are skipped.
func (s *ValueService) GetValues(ctx context.Context, entityID string) (map[uuid.UUID]any, error) {
	stored, err := s.store.Values().Query(ctx, repository.Filter{"entity_id": entityID})
	if err != nil {
		return nil, fmt.Errorf("finding values: %w", err)
	}

	out := make(map[uuid.UUID]any, len(stored))
	types := map[uuid.UUID]model.FieldType{}
	for _, v := range stored {
		ft, ok := types[v.FieldID]
		if !ok {
			field, err := s.store.Fields().Get(ctx, v.FieldID)
			if err != nil {
				s.logger.Warn("skipping value of missing field", "scope", s.scope, "entity", entityID, "field", v.FieldID)
				continue
			}
			ft = field.FieldType
			types[v.FieldID] = ft
		}
		out[v.FieldID] = coerce.Decode(ft, v.RawValue)
	}
	return out, nil
}

// DeleteEntity removes every value stored for the entity and reports how many
// were removed.
func (s *ValueService) DeleteEntity(ctx context.Context, entityID string) (int, error) {
	removed := 0
	_, err := repository.Atomic(ctx, s.store, func(st repository.Store) error {
		stored, err := st.Values().Query(ctx, repository.Filter{"entity_id": entityID})
		if err != nil {
			return fmt.Errorf("finding values: %w", err)
		}
		for _, v := range stored {
			if err := st.Values().Delete(ctx, v.ID); err != nil {
				return fmt.Errorf("deleting value %s: %w", v.ID, err)
			}
			removed++
		}
		return nil
	})
	return removed, err
}

// Response renders the entity's stored values as ordered sections, one per
// active module.
func (s *ValueService) Response(ctx context.Context, entityID string) ([]assembler.Section, error) {
	modules, fields, err := s.schema(ctx)
	if err != nil {
		return nil, err
	}

	stored, err := s.store.Values().Query(ctx, repository.Filter{"entity_id": entityID})
	if err != nil {
		return nil, fmt.Errorf("finding values: %w", err)
	}
	rawByField := make(map[uuid.UUID]string, len(stored))
	for _, v := range stored {
		rawByField[v.FieldID] = v.RawValue
	}

	byModule := map[uuid.UUID][]*model.Field{}
	for _, f := range fields {
		byModule[f.ModuleID] = append(byModule[f.ModuleID], f)
	}

	raw := assembler.NewObject()
	for _, m := range modules {
		answers := assembler.NewObject()
		for _, f := range byModule[m.ID] {
			if v, ok := rawByField[f.ID]; ok {
				answers.Set(f.FieldKey, v)
			}
		}
		raw.Set(m.ID.String(), assembler.NewObject().
			Set("name", m.Name).
			Set("orderIndex", m.OrderIndex).
			Set("fields", answers))
	}

	return assembler.Assemble(raw, assembler.NewSchema(modules, fields)), nil
}

// Assemble renders a stored response map against the scope's current schema.
func (s *ValueService) Assemble(ctx context.Context, raw *assembler.Object) ([]assembler.Section, error) {
	if raw == nil {
		return []assembler.Section{}, nil
	}
	modules, fields, err := s.schema(ctx)
	if err != nil {
		return nil, err
	}
	return assembler.Assemble(raw, assembler.NewSchema(modules, fields)), nil
}

func (s *ValueService) schema(ctx context.Context) ([]*model.Module, []*model.Field, error) {
	modules, err := s.store.Modules().Query(ctx, nil, byOrderIndex...)
	if err != nil {
		return nil, nil, fmt.Errorf("listing modules: %w", err)
	}
	fields, err := s.store.Fields().Query(ctx, nil, byOrderIndex...)
	if err != nil {
		return nil, nil, fmt.Errorf("listing fields: %w", err)
	}
	return modules, fields, nil
}
