// internal/repository/module.go
package repository

import (
	"context"

	"github.com/dangerclosesec/catalog/internal/domain"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModuleRepositoryIface interface {
	Insert(ctx context.Context, module *model.Module) error
	Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*model.Module, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Query(ctx context.Context, filter Filter, order ...string) ([]*model.Module, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Module, error)
}

type ModuleRepository struct {
	*gormTable[model.Module]
}

func NewModuleRepository(db *gorm.DB, table string) *ModuleRepository {
	return &ModuleRepository{&gormTable[model.Module]{db: db, table: table, notFound: domain.ErrModuleNotFound}}
}
