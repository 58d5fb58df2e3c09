package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Value is the stored content of one field for one entity instance. RawValue is
// always a string; typed interpretation happens when it is read.
type Value struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EntityID  string    `gorm:"type:text;not null" json:"entity_id"`
	FieldID   uuid.UUID `gorm:"type:uuid;not null" json:"field_id"`
	RawValue  string    `gorm:"type:text;not null" json:"raw_value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Value) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
