package catalog

import (
	"context"
	"log/slog"

	"github.com/dangerclosesec/catalog/internal/audit"
	"gorm.io/gorm"
)

// Config holds the configuration settings for the engine.
type Config struct {
	// ctx is the context for all operations.
	ctx context.Context

	// logger is the logger used for logging messages.
	logger *slog.Logger

	// TablePrefix is the prefix for all tables.
	// Default is "catalog_".
	TablePrefix string

	// db is the database connection. When nil the engine keeps schema and
	// values in memory.
	db *gorm.DB

	// auditor records schema changes. Defaults to a no-op.
	auditor audit.Logger
}

func NewConfig(ctx context.Context, db *gorm.DB) *Config {
	return &Config{
		ctx:         ctx,
		db:          db,
		TablePrefix: "catalog_",
	}
}

// SetTablePrefix sets the table prefix for all tables.
func (c *Config) SetTablePrefix(prefix string) {
	c.TablePrefix = prefix
}

// SetDB sets the database connection.
func (c *Config) SetDB(db *gorm.DB) {
	c.db = db
}

// SetLogger sets the logger.
func (c *Config) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// SetAuditLogger sets the recorder of schema changes.
func (c *Config) SetAuditLogger(auditor audit.Logger) {
	c.auditor = auditor
}
