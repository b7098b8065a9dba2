package model

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceModel is the GORM-specific struct for the 'invoices' table.
// Invoices are written by the billing backend; this service only reads them.
type InvoiceModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;not null;index"`
	IssueDate      time.Time `gorm:"not null;index"`
	Description    string    `gorm:"type:text;not null"`
	Amount         float64   `gorm:"type:decimal(10,2);not null"`
	Status         string    `gorm:"type:varchar(32);not null"`
	ReceiptURL     *string   `gorm:"type:text"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}
