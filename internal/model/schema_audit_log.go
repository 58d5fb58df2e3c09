package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// SchemaAuditLog records one administrative change to a schema scope.
type SchemaAuditLog struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Timestamp  time.Time `json:"timestamp" gorm:"default:CURRENT_TIMESTAMP"`
	Scope      Scope     `json:"scope"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	Actor      string    `json:"actor"`
	Details    JSONMap   `json:"details" gorm:"type:jsonb"`
	CreatedAt  time.Time `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// AuditTable returns the name of the audit log table under the given prefix.
func AuditTable(prefix string) string {
	return prefix + "schema_audit_logs"
}

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}

// Audit actions
const (
	ActionModuleCreate   = "module_create"
	ActionModuleUpdate   = "module_update"
	ActionModuleDelete   = "module_delete"
	ActionModuleReorder  = "module_reorder"
	ActionFieldCreate    = "field_create"
	ActionFieldUpdate    = "field_update"
	ActionFieldDelete    = "field_delete"
	ActionFieldReorder   = "field_reorder"
	ActionPartialReorder = "partial_reorder"
)
