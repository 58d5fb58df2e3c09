package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Module is a named, ordered group of fields.
type Module struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	OrderIndex  int       `gorm:"not null" json:"order_index"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns the module id when the caller left it empty.
func (m *Module) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *Module) GetID() uuid.UUID { return m.ID }

func (m *Module) GetOrderIndex() int { return m.OrderIndex }
