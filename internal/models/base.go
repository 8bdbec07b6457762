package models

import (
	"time"

	"gorm.io/gorm"
)

// Base contains the common columns shared by all tables. DeletedAt enables
// GORM's soft delete: deleted rows stay in storage for audit but are
// excluded from every default-scoped query.
type Base struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
