package migration_test

import (
	"strings"
	"testing"

	"github.com/dangerclosesec/catalog/internal/migration"
	"github.com/stretchr/testify/assert"
)

func TestStatements(t *testing.T) {
	stmts := migration.Statements("catalog_")
	ddl := strings.Join(stmts, ";\n")

	for _, table := range []string{
		"catalog_company_modules", "catalog_company_fields", "catalog_company_values",
		"catalog_survey_modules", "catalog_survey_fields", "catalog_survey_values",
		"catalog_schema_audit_logs", "catalog_schema_migrations",
	} {
		assert.Contains(t, ddl, `CREATE TABLE IF NOT EXISTS "`+table+`"`)
	}

	assert.Contains(t, ddl, `ON "catalog_company_fields" (module_id, lower(field_key))`)
	assert.Contains(t, ddl, `ON "catalog_survey_values" (entity_id, field_id)`)

	for _, stmt := range stmts {
		assert.Contains(t, stmt, "IF NOT EXISTS", "statement must be idempotent: %s", stmt)
	}
}

func TestStatementsQuotePrefix(t *testing.T) {
	ddl := strings.Join(migration.Statements(`odd"prefix_`), "\n")
	assert.Contains(t, ddl, `"odd""prefix_company_modules"`)
}

func TestStatementsAuditTableFollowsPrefix(t *testing.T) {
	ddl := strings.Join(migration.Statements("tenant_"), ";\n")

	assert.Contains(t, ddl, `CREATE TABLE IF NOT EXISTS "tenant_schema_audit_logs"`)
	assert.Contains(t, ddl, `CREATE INDEX IF NOT EXISTS "tenant_schema_audit_logs_scope_idx" ON "tenant_schema_audit_logs"`)
	assert.NotContains(t, ddl, "catalog_")
}
