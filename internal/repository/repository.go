// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/catalog/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// Filter is an equality filter keyed by column name. A slice value matches any
// of its elements.
type Filter map[string]any

// Store bundles the repositories of one schema scope.
type Store interface {
	Modules() ModuleRepositoryIface
	Fields() FieldRepositoryIface
	Values() ValueRepositoryIface
}

// TxStore is a Store able to apply a batch of writes atomically. Writes made
// through the Store passed to fn commit together or not at all.
type TxStore interface {
	Store
	Transaction(ctx context.Context, fn func(Store) error) error
}

// Atomic runs fn inside a transaction when the store supports one and
// reports whether it did. Stores without transactions run fn directly.
func Atomic(ctx context.Context, s Store, fn func(Store) error) (bool, error) {
	if tx, ok := s.(TxStore); ok {
		return true, tx.Transaction(ctx, fn)
	}
	return false, fn(s)
}

const pgUniqueViolation = "23505"

// translateError maps driver errors onto domain errors.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateKey, pgErr.ConstraintName)
	}
	return err
}
