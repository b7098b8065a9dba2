package usecase

import (
	"context"

	"refboard/internal/domain/entity"
	"refboard/internal/domain/repository"
)

// InvoicePage is one slice of the payment history plus the cursor state the
// caller needs to ask for the next slice.
type InvoicePage struct {
	Invoices []*entity.Invoice `json:"invoices"`
	Page     int               `json:"page"`
	HasMore  bool              `json:"has_more"`
}

// InvoiceQuery narrows and orders a history page request. A nil Status means
// all statuses; the zero Sort means newest first.
type InvoiceQuery struct {
	Status *entity.InvoiceStatus
	Sort   repository.DateSort
}

// InvoiceUsecase defines the interface for the payment history
type InvoiceUsecase interface {
	// GetInvoicePage retrieves one zero-based page of the payment history
	GetInvoicePage(ctx context.Context, page int, query InvoiceQuery) (*InvoicePage, error)
}
