package model

import (
	"fmt"
	"time"

	"github.com/dangerclosesec/catalog/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type FieldType string

const (
	FieldText        FieldType = "text"
	FieldTextarea    FieldType = "textarea"
	FieldNumber      FieldType = "number"
	FieldDate        FieldType = "date"
	FieldBoolean     FieldType = "boolean"
	FieldURL         FieldType = "url"
	FieldEmail       FieldType = "email"
	FieldSelect      FieldType = "select"
	FieldMultiselect FieldType = "multiselect"
	FieldCheckbox    FieldType = "checkbox"
	FieldRating      FieldType = "rating"
	FieldNPS         FieldType = "nps"
)

var validFieldTypes = map[FieldType]bool{
	FieldText:        true,
	FieldTextarea:    true,
	FieldNumber:      true,
	FieldDate:        true,
	FieldBoolean:     true,
	FieldURL:         true,
	FieldEmail:       true,
	FieldSelect:      true,
	FieldMultiselect: true,
	FieldCheckbox:    true,
	FieldRating:      true,
	FieldNPS:         true,
}

// Valid reports whether t is a known field type.
func (t FieldType) Valid() bool {
	return validFieldTypes[t]
}

// RequiresOptions reports whether fields of this type must carry at least one option.
func (t FieldType) RequiresOptions() bool {
	switch t {
	case FieldSelect, FieldMultiselect, FieldCheckbox:
		return true
	}
	return false
}

// IsMultiValued reports whether values of this type are delimiter-joined lists.
func (t FieldType) IsMultiValued() bool {
	return t == FieldMultiselect || t == FieldCheckbox
}

// Field is a typed attribute definition owned by exactly one module.
type Field struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ModuleID    uuid.UUID      `gorm:"type:uuid;not null" json:"module_id"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	FieldKey    string         `gorm:"type:text;not null" json:"field_key"`
	FieldType   FieldType      `gorm:"type:text;not null" json:"field_type"`
	Options     pq.StringArray `gorm:"type:text[]" json:"options,omitempty"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	IsRequired  bool           `gorm:"not null" json:"is_required"`
	OrderIndex  int            `gorm:"not null" json:"order_index"`
	IsActive    bool           `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// BeforeCreate assigns the id and rejects unknown field types.
func (f *Field) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	if !f.FieldType.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidFieldType, f.FieldType)
	}

	return nil
}

func (f *Field) GetID() uuid.UUID { return f.ID }

func (f *Field) GetOrderIndex() int { return f.OrderIndex }
