package repository

import (
	"context"

	"github.com/dangerclosesec/catalog/internal/model"
	"gorm.io/gorm"
)

// GormStore is the postgres-backed Store of one schema scope.
type GormStore struct {
	db      *gorm.DB
	tables  model.Tables
	modules *ModuleRepository
	fields  *FieldRepository
	values  *ValueRepository
}

func NewGormStore(db *gorm.DB, tables model.Tables) *GormStore {
	return &GormStore{
		db:      db,
		tables:  tables,
		modules: NewModuleRepository(db, tables.Modules),
		fields:  NewFieldRepository(db, tables.Fields),
		values:  NewValueRepository(db, tables.Values),
	}
}

func (s *GormStore) Modules() ModuleRepositoryIface { return s.modules }
func (s *GormStore) Fields() FieldRepositoryIface   { return s.fields }
func (s *GormStore) Values() ValueRepositoryIface   { return s.values }

// Transaction runs fn against a store bound to a single database transaction.
func (s *GormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx, s.tables))
	})
}
