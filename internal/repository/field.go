// internal/repository/field.go
package repository

import (
	"context"

	"github.com/dangerclosesec/catalog/internal/domain"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldRepositoryIface defines the interface for the field repository.
type FieldRepositoryIface interface {
	Insert(ctx context.Context, field *model.Field) error
	Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*model.Field, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Query(ctx context.Context, filter Filter, order ...string) ([]*model.Field, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Field, error)
}

// FieldRepository implements FieldRepositoryIface.
type FieldRepository struct {
	*gormTable[model.Field]
}

func NewFieldRepository(db *gorm.DB, table string) *FieldRepository {
	return &FieldRepository{&gormTable[model.Field]{db: db, table: table, notFound: domain.ErrFieldNotFound}}
}
