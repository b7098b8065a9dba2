package model

import (
	"time"

	"github.com/google/uuid"
)

// Subscription lifecycle states as stored by the billing backend.
const (
	SubscriptionStatusActive = "active"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
// A profile has at most one active subscription at a time.
type SubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Plan *PlanModel `gorm:"foreignKey:PlanID"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
