package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanModel is the GORM-specific struct for the 'plans' table.
type PlanModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(64);not null"`
	Price     float64   `gorm:"type:decimal(10,2);not null;default:0"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlanModel) TableName() string {
	return "plans"
}
