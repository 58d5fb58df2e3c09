package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchemaAuditLogRepository handles database operations for schema audit logs
type SchemaAuditLogRepository struct {
	db    *gorm.DB
	table string
}

// NewSchemaAuditLogRepository creates a new SchemaAuditLogRepository for the
// audit table under prefix
func NewSchemaAuditLogRepository(db *gorm.DB, prefix string) *SchemaAuditLogRepository {
	return &SchemaAuditLogRepository{
		db:    db,
		table: model.AuditTable(prefix),
	}
}

// Create inserts a new audit log entry
func (r *SchemaAuditLogRepository) Create(ctx context.Context, log *model.SchemaAuditLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Table(r.table).Create(log)
	if result.Error != nil {
		return fmt.Errorf("failed to create schema audit log: %w", result.Error)
	}

	return nil
}

// AuditQueryParams holds parameters for querying audit logs
type AuditQueryParams struct {
	Scope      model.Scope
	Action     string
	TargetType string
	TargetID   string
	StartTime  time.Time
	EndTime    time.Time
	Limit      int
	Offset     int
}

// Query retrieves audit logs based on the provided query parameters
func (r *SchemaAuditLogRepository) Query(ctx context.Context, params AuditQueryParams) ([]model.SchemaAuditLog, int64, error) {
	var logs []model.SchemaAuditLog
	var count int64

	query := r.db.WithContext(ctx).Table(r.table)

	if params.Scope != "" {
		query = query.Where("scope = ?", params.Scope)
	}
	if params.Action != "" {
		query = query.Where("action = ?", params.Action)
	}
	if params.TargetType != "" {
		query = query.Where("target_type = ?", params.TargetType)
	}
	if params.TargetID != "" {
		query = query.Where("target_id = ?", params.TargetID)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", params.EndTime)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count schema audit logs: %w", err)
	}

	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	} else {
		query = query.Limit(100) // Default limit
	}

	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	result := query.Order("timestamp DESC").Find(&logs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query schema audit logs: %w", result.Error)
	}

	return logs, count, nil
}
