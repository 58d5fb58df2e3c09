package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/catalog/internal/audit"
	"github.com/dangerclosesec/catalog/internal/domain"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/dangerclosesec/catalog/internal/repository"
	"github.com/google/uuid"
)

// ordered is a module or field carrying a position among its siblings.
type ordered interface {
	GetID() uuid.UUID
	GetOrderIndex() int
}

// OrderingService keeps module and field order indices dense and zero based.
type OrderingService struct {
	scope   model.Scope
	store   repository.Store
	auditor audit.Logger
	logger  *slog.Logger
}

func NewOrderingService(scope model.Scope, store repository.Store, auditor audit.Logger, logger *slog.Logger) *OrderingService {
	if auditor == nil {
		auditor = &audit.NoOpLogger{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderingService{
		scope:   scope,
		store:   store,
		auditor: auditor,
		logger:  logger,
	}
}

// siblings describes one reorderable set: the scope's modules or one module's fields.
type siblings[T ordered] struct {
	name   string
	list   func(ctx context.Context, st repository.Store) ([]T, error)
	update func(ctx context.Context, st repository.Store, id uuid.UUID, index int) error
}

func moduleSiblings() siblings[*model.Module] {
	return siblings[*model.Module]{
		name: "modules",
		list: func(ctx context.Context, st repository.Store) ([]*model.Module, error) {
			return st.Modules().Query(ctx, nil, byOrderIndex...)
		},
		update: func(ctx context.Context, st repository.Store, id uuid.UUID, index int) error {
			_, err := st.Modules().Update(ctx, id, map[string]any{"order_index": index})
			return err
		},
	}
}

func fieldSiblings(moduleID uuid.UUID) siblings[*model.Field] {
	return siblings[*model.Field]{
		name: "fields of module " + moduleID.String(),
		list: func(ctx context.Context, st repository.Store) ([]*model.Field, error) {
			return st.Fields().Query(ctx, repository.Filter{"module_id": moduleID}, byOrderIndex...)
		},
		update: func(ctx context.Context, st repository.Store, id uuid.UUID, index int) error {
			_, err := st.Fields().Update(ctx, id, map[string]any{"order_index": index})
			return err
		},
	}
}

// ReorderModules assigns each module the position of its id in ids, which
// must be a permutation of the scope's modules.
func (s *OrderingService) ReorderModules(ctx context.Context, ids []uuid.UUID) error {
	if err := reorder(ctx, s, moduleSiblings(), ids); err != nil {
		return err
	}
	s.record(ctx, model.ActionModuleReorder, "scope", string(s.scope), ids)
	return nil
}

// ReorderFields assigns each field of the module the position of its id in
// ids, which must be a permutation of the module's fields.
func (s *OrderingService) ReorderFields(ctx context.Context, moduleID uuid.UUID, ids []uuid.UUID) error {
	if _, err := s.store.Modules().Get(ctx, moduleID); err != nil {
		return err
	}
	if err := reorder(ctx, s, fieldSiblings(moduleID), ids); err != nil {
		return err
	}
	s.record(ctx, model.ActionFieldReorder, "module", moduleID.String(), ids)
	return nil
}

// MoveModule moves one module to position to, shifting the others.
func (s *OrderingService) MoveModule(ctx context.Context, id uuid.UUID, to int) ([]uuid.UUID, error) {
	modules, err := moduleSiblings().list(ctx, s.store)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}
	order, err := MoveID(idsOf(modules), id, to)
	if err != nil {
		return nil, err
	}
	return order, s.ReorderModules(ctx, order)
}

// MoveField moves one field to position to within its module.
func (s *OrderingService) MoveField(ctx context.Context, moduleID, id uuid.UUID, to int) ([]uuid.UUID, error) {
	fields, err := fieldSiblings(moduleID).list(ctx, s.store)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}
	order, err := MoveID(idsOf(fields), id, to)
	if err != nil {
		return nil, err
	}
	return order, s.ReorderFields(ctx, moduleID, order)
}

// MoveID returns a copy of ids with id removed from its position and
// re-inserted at to, the way a drag-and-drop list computes its new order.
// to is clamped to the bounds of the list.
func MoveID(ids []uuid.UUID, id uuid.UUID, to int) ([]uuid.UUID, error) {
	from := -1
	for i, v := range ids {
		if v == id {
			from = i
			break
		}
	}
	if from < 0 {
		return nil, fmt.Errorf("%w: %s is not a member", domain.ErrInvalidReorder, id)
	}

	out := make([]uuid.UUID, 0, len(ids))
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)

	if to < 0 {
		to = 0
	}
	if to > len(out) {
		to = len(out)
	}

	out = append(out, uuid.Nil)
	copy(out[to+1:], out[to:])
	out[to] = id
	return out, nil
}

func reorder[T ordered](ctx context.Context, s *OrderingService, sib siblings[T], ids []uuid.UUID) error {
	members, err := sib.list(ctx, s.store)
	if err != nil {
		return fmt.Errorf("listing %s: %w", sib.name, err)
	}
	if err := checkPermutation(members, ids); err != nil {
		return err
	}

	if tx, ok := s.store.(repository.TxStore); ok {
		return tx.Transaction(ctx, func(st repository.Store) error {
			_, err := applyOrder(ctx, st, sib, members, ids)
			return err
		})
	}

	applied, err := applyOrder(ctx, s.store, sib, members, ids)
	if err == nil {
		return nil
	}

	current, rerr := recoverOrder(ctx, s.store, sib)
	if rerr != nil {
		err = errors.Join(err, fmt.Errorf("recovering order: %w", rerr))
	}
	s.logger.Warn("reorder partially applied",
		"scope", s.scope,
		"members", sib.name,
		"applied", applied,
		"error", err,
	)
	s.record(ctx, model.ActionPartialReorder, "scope", sib.name, current)

	return &domain.PartialReorderError{
		Scope:   sib.name,
		Applied: applied,
		Current: current,
		Err:     err,
	}
}

// checkPermutation reports ErrInvalidReorder unless ids holds every member exactly once.
func checkPermutation[T ordered](members []T, ids []uuid.UUID) error {
	if len(ids) != len(members) {
		return fmt.Errorf("%w: got %d ids for %d members", domain.ErrInvalidReorder, len(ids), len(members))
	}

	want := make(map[uuid.UUID]bool, len(members))
	for _, m := range members {
		want[m.GetID()] = true
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if !want[id] {
			return fmt.Errorf("%w: unknown id %s", domain.ErrInvalidReorder, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate id %s", domain.ErrInvalidReorder, id)
		}
		seen[id] = true
	}
	return nil
}

// applyOrder writes the new position of every member whose position changes
// and returns how many writes succeeded.
func applyOrder[T ordered](ctx context.Context, st repository.Store, sib siblings[T], members []T, ids []uuid.UUID) (int, error) {
	current := make(map[uuid.UUID]int, len(members))
	for _, m := range members {
		current[m.GetID()] = m.GetOrderIndex()
	}

	applied := 0
	for pos, id := range ids {
		if current[id] == pos {
			continue
		}
		if err := sib.update(ctx, st, id, pos); err != nil {
			return applied, fmt.Errorf("setting position %d of %s: %w", pos, id, err)
		}
		applied++
	}
	return applied, nil
}

// recoverOrder re-reads the stored order after a failed batch, closes any gaps
// or duplicates the partial batch left behind, and returns the order now in storage.
func recoverOrder[T ordered](ctx context.Context, st repository.Store, sib siblings[T]) ([]uuid.UUID, error) {
	members, err := sib.list(ctx, st)
	if err != nil {
		return nil, err
	}
	if err := densify(ctx, st, sib, members); err != nil {
		return idsOf(members), err
	}
	members, err = sib.list(ctx, st)
	if err != nil {
		return nil, err
	}
	return idsOf(members), nil
}

// densify rewrites positions so that members, already sorted, occupy 0..n-1.
func densify[T ordered](ctx context.Context, st repository.Store, sib siblings[T], members []T) error {
	for i, m := range members {
		if m.GetOrderIndex() == i {
			continue
		}
		if err := sib.update(ctx, st, m.GetID(), i); err != nil {
			return fmt.Errorf("closing gap in %s: %w", sib.name, err)
		}
	}
	return nil
}

func densifyModules(ctx context.Context, st repository.Store) error {
	sib := moduleSiblings()
	members, err := sib.list(ctx, st)
	if err != nil {
		return fmt.Errorf("listing modules: %w", err)
	}
	return densify(ctx, st, sib, members)
}

func densifyFields(ctx context.Context, st repository.Store, moduleID uuid.UUID) error {
	sib := fieldSiblings(moduleID)
	members, err := sib.list(ctx, st)
	if err != nil {
		return fmt.Errorf("listing fields: %w", err)
	}
	return densify(ctx, st, sib, members)
}

func idsOf[T ordered](members []T) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.GetID())
	}
	return ids
}

func (s *OrderingService) record(ctx context.Context, action, targetType, targetID string, order []uuid.UUID) {
	positions := make([]string, 0, len(order))
	for _, id := range order {
		positions = append(positions, id.String())
	}
	_ = s.auditor.LogSchemaChange(ctx, audit.Change{
		Scope:      s.scope,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Actor:      audit.ActorFrom(ctx),
		Details:    map[string]interface{}{"order": positions},
	})
}
