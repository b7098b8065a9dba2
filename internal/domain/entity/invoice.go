package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus is the lifecycle state of a payment-history row.
type InvoiceStatus string

const (
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPaid, InvoiceStatusPending, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}

	return false
}

// Payment channels derived from the invoice description.
const (
	PaymentChannelPix  = "pix"
	PaymentChannelCard = "card"
)

// Invoice is a single payment-history row. Invoices are created and mutated by the
// billing backend; this service only reads them.
type Invoice struct {
	ID             uuid.UUID     `json:"id"`
	SubscriptionID uuid.UUID     `json:"subscription_id"`
	IssueDate      time.Time     `json:"issue_date"`
	Description    string        `json:"description"`
	Amount         float64       `json:"amount"` // Monetary value in a 2-decimal currency unit.
	Status         InvoiceStatus `json:"status"`
	ReceiptURL     string        `json:"receipt_url,omitempty"`
}

// PaymentChannel guesses the payment channel from the free-text description.
// There is no dedicated column for it yet.
func (i *Invoice) PaymentChannel() string {
	if strings.Contains(strings.ToLower(i.Description), "pix") {
		return PaymentChannelPix
	}

	return PaymentChannelCard
}
