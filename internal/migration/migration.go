// Package migration creates the tables backing every schema scope.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/lib/pq"
)

// Version is the layout version created by InitializeSchema.
const Version = 1

// Migrator handles database migrations for the catalog tables
type Migrator struct {
	DB     *sql.DB
	prefix string
}

// NewMigrator creates a new migrator for tables named with prefix
func NewMigrator(db *sql.DB, prefix string) *Migrator {
	return &Migrator{DB: db, prefix: prefix}
}

// Statements returns the DDL creating the audit table and the tables of
// every scope. Every statement is idempotent.
func Statements(prefix string) []string {
	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		version INT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`, quote(prefix+"schema_migrations")),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		timestamp TIMESTAMPTZ NOT NULL,
		scope TEXT NOT NULL,
		action TEXT NOT NULL,
		target_type TEXT NOT NULL,
		target_id TEXT NOT NULL,
		actor TEXT,
		details JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`, quote(model.AuditTable(prefix))),

		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (scope, timestamp)`,
			quote(model.AuditTable(prefix)+"_scope_idx"), quote(model.AuditTable(prefix))),
	}

	for _, scope := range model.Scopes {
		stmts = append(stmts, scopeStatements(scope.Tables(prefix))...)
	}
	return stmts
}

func scopeStatements(t model.Tables) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		order_index INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`, quote(t.Modules)),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		module_id UUID NOT NULL REFERENCES %s (id),
		name TEXT NOT NULL,
		field_key TEXT NOT NULL,
		field_type TEXT NOT NULL,
		options TEXT[],
		description TEXT,
		is_required BOOLEAN NOT NULL DEFAULT FALSE,
		order_index INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`, quote(t.Fields), quote(t.Modules)),

		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (module_id, lower(field_key))`,
			quote(t.Fields+"_module_key_idx"), quote(t.Fields)),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		entity_id TEXT NOT NULL,
		field_id UUID NOT NULL REFERENCES %s (id),
		raw_value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`, quote(t.Values), quote(t.Fields)),

		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (entity_id, field_id)`,
			quote(t.Values+"_entity_field_idx"), quote(t.Values)),

		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (field_id)`,
			quote(t.Values+"_field_idx"), quote(t.Values)),
	}
}

// InitializeSchema creates every table in one transaction and records Version.
func (m *Migrator) InitializeSchema(ctx context.Context) error {
	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range Statements(m.prefix) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply %q: %w", firstLine(stmt), err)
		}
	}

	_, err = tx.ExecContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (version) VALUES ($1) ON CONFLICT (version) DO NOTHING`,
		quote(m.prefix+"schema_migrations"),
	), Version)
	if err != nil {
		return fmt.Errorf("failed to record version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetCurrentVersion gets the applied layout version, 0 when none
func (m *Migrator) GetCurrentVersion(ctx context.Context) (int, error) {
	var version int
	err := m.DB.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT COALESCE(MAX(version), 0) FROM %s`, quote(m.prefix+"schema_migrations"),
	)).Scan(&version)
	return version, err
}

func quote(name string) string {
	return pq.QuoteIdentifier(name)
}

func firstLine(stmt string) string {
	line, _, _ := strings.Cut(stmt, "\n")
	return strings.TrimSpace(line)
}
