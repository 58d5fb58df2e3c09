package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTable implements the generic CRUD verbs against one named table.
type gormTable[T any] struct {
	db       *gorm.DB
	table    string
	notFound error
}

func (t *gormTable[T]) conn(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx).Table(t.table)
}

// Insert creates rec; the id is assigned by the model's BeforeCreate hook.
func (t *gormTable[T]) Insert(ctx context.Context, rec *T) error {
	if err := t.conn(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("inserting into %s: %w", t.table, translateError(err))
	}
	return nil
}

// Update applies patch to the row with the given id and returns the stored row.
func (t *gormTable[T]) Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*T, error) {
	cols := make(map[string]any, len(patch)+1)
	for k, v := range patch {
		cols[k] = v
	}
	cols["updated_at"] = time.Now().UTC()

	result := t.conn(ctx).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return nil, fmt.Errorf("updating %s: %w", t.table, translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return nil, t.notFound
	}

	return t.Get(ctx, id)
}

func (t *gormTable[T]) Delete(ctx context.Context, id uuid.UUID) error {
	result := t.conn(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return fmt.Errorf("deleting from %s: %w", t.table, result.Error)
	}
	if result.RowsAffected == 0 {
		return t.notFound
	}
	return nil
}

// Query returns the rows matching filter, sorted by the given order clauses
// (for example "order_index ASC").
func (t *gormTable[T]) Query(ctx context.Context, filter Filter, order ...string) ([]*T, error) {
	q := t.conn(ctx)
	if len(filter) > 0 {
		q = q.Where(map[string]interface{}(filter))
	}
	for _, o := range order {
		q = q.Order(o)
	}

	var rows []*T
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("querying %s: %w", t.table, err)
	}
	return rows, nil
}

func (t *gormTable[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var rec T
	if err := t.conn(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, t.notFound
		}
		return nil, fmt.Errorf("finding in %s: %w", t.table, err)
	}
	return &rec, nil
}
