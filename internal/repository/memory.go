package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dangerclosesec/catalog/internal/domain"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/google/uuid"
)

// MemoryStore is an in-process Store. It offers no transactions, so callers
// see the same partial-failure behaviour as with a hosted REST backend.
type MemoryStore struct {
	modules *memTable[model.Module]
	fields  *memTable[model.Field]
	values  *memTable[model.Value]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		modules: newMemTable("modules", domain.ErrModuleNotFound,
			func(m *model.Module) *uuid.UUID { return &m.ID }),
		fields: newMemTable("fields", domain.ErrFieldNotFound,
			func(f *model.Field) *uuid.UUID { return &f.ID }),
		values: newMemTable("values", errValueNotFound,
			func(v *model.Value) *uuid.UUID { return &v.ID }),
	}
}

func (s *MemoryStore) Modules() ModuleRepositoryIface { return s.modules }
func (s *MemoryStore) Fields() FieldRepositoryIface   { return s.fields }
func (s *MemoryStore) Values() ValueRepositoryIface   { return s.values }

// memTable keeps rows in insertion order. Rows are matched and patched through
// their JSON form, whose keys are the column names.
type memTable[T any] struct {
	mu       sync.RWMutex
	name     string
	notFound error
	idOf     func(*T) *uuid.UUID
	rows     []*T
}

func newMemTable[T any](name string, notFound error, idOf func(*T) *uuid.UUID) *memTable[T] {
	return &memTable[T]{name: name, notFound: notFound, idOf: idOf}
}

func (t *memTable[T]) Insert(ctx context.Context, rec *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.idOf(rec)
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	if t.indexOf(*id) >= 0 {
		return fmt.Errorf("inserting into %s: duplicate id %s", t.name, *id)
	}

	if err := stampCreated(rec, time.Now().UTC()); err != nil {
		return fmt.Errorf("inserting into %s: %w", t.name, err)
	}

	row, err := clone(rec)
	if err != nil {
		return fmt.Errorf("inserting into %s: %w", t.name, err)
	}
	t.rows = append(t.rows, row)
	return nil
}

// stampCreated fills zero created_at and updated_at columns of rec with now,
// as gorm does on create.
func stampCreated(rec any, now time.Time) error {
	cols, err := columns(rec)
	if err != nil {
		return err
	}
	stamped := false
	for _, col := range []string{"created_at", "updated_at"} {
		v, ok := cols[col]
		if !ok {
			continue
		}
		var at time.Time
		if s, isString := v.(string); isString {
			if err := at.UnmarshalText([]byte(s)); err != nil {
				return fmt.Errorf("parsing %s: %w", col, err)
			}
		}
		if at.IsZero() {
			cols[col] = now
			stamped = true
		}
	}
	if !stamped {
		return nil
	}

	b, err := json.Marshal(cols)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, rec)
}

func (t *memTable[T]) Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return nil, t.notFound
	}

	cols, err := columns(t.rows[i])
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", t.name, err)
	}
	for k, v := range patch {
		cols[k] = v
	}
	cols["updated_at"] = time.Now().UTC()

	b, err := json.Marshal(cols)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", t.name, err)
	}
	var row T
	if err := json.Unmarshal(b, &row); err != nil {
		return nil, fmt.Errorf("updating %s: %w", t.name, err)
	}
	t.rows[i] = &row

	return clone(&row)
}

func (t *memTable[T]) Delete(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return t.notFound
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return nil
}

func (t *memTable[T]) Query(ctx context.Context, filter Filter, order ...string) ([]*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	type match struct {
		row  *T
		cols map[string]any
	}
	var matches []match
	for _, row := range t.rows {
		cols, err := columns(row)
		if err != nil {
			return nil, fmt.Errorf("querying %s: %w", t.name, err)
		}
		if matchesFilter(cols, filter) {
			matches = append(matches, match{row: row, cols: cols})
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		col, desc := parseOrder(order[i])
		sort.SliceStable(matches, func(a, b int) bool {
			c := compareColumn(matches[a].cols[col], matches[b].cols[col])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}

	out := make([]*T, 0, len(matches))
	for _, m := range matches {
		row, err := clone(m.row)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

func (t *memTable[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i := t.indexOf(id)
	if i < 0 {
		return nil, t.notFound
	}
	return clone(t.rows[i])
}

func (t *memTable[T]) indexOf(id uuid.UUID) int {
	for i, row := range t.rows {
		if *t.idOf(row) == id {
			return i
		}
	}
	return -1
}

func clone[T any](rec *T) (*T, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func columns(rec any) (map[string]any, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	cols := map[string]any{}
	if err := json.Unmarshal(b, &cols); err != nil {
		return nil, err
	}
	return cols, nil
}

func matchesFilter(cols map[string]any, filter Filter) bool {
	for k, want := range filter {
		got := fmt.Sprint(cols[k])
		if !anyEqual(got, want) {
			return false
		}
	}
	return true
}

func anyEqual(got string, want any) bool {
	switch w := want.(type) {
	case []uuid.UUID:
		for _, v := range w {
			if got == v.String() {
				return true
			}
		}
		return false
	case []string:
		for _, v := range w {
			if got == v {
				return true
			}
		}
		return false
	}
	return got == fmt.Sprint(want)
}

func parseOrder(clause string) (string, bool) {
	parts := strings.Fields(clause)
	if len(parts) == 0 {
		return "", false
	}
	return parts[0], len(parts) > 1 && strings.EqualFold(parts[1], "desc")
}

func compareColumn(a, b any) int {
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			}
			return 1
		}
	case string:
		if bv, ok := b.(string); ok {
			at, aerr := time.Parse(time.RFC3339Nano, av)
			bt, berr := time.Parse(time.RFC3339Nano, bv)
			if aerr == nil && berr == nil {
				return at.Compare(bt)
			}
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
