// internal/repository/value.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/catalog/internal/domain"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errValueNotFound = fmt.Errorf("value %w", domain.ErrNotFound)

type ValueRepositoryIface interface {
	Insert(ctx context.Context, value *model.Value) error
	Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*model.Value, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Query(ctx context.Context, filter Filter, order ...string) ([]*model.Value, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Value, error)
}

type ValueRepository struct {
	*gormTable[model.Value]
}

func NewValueRepository(db *gorm.DB, table string) *ValueRepository {
	return &ValueRepository{&gormTable[model.Value]{db: db, table: table, notFound: errValueNotFound}}
}
