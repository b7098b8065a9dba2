package repository

import (
	"context"

	"refboard/internal/domain/entity"
)

// DateSort is the issue-date ordering of an invoice page.
type DateSort string

const (
	DateSortDesc DateSort = "desc"
	DateSortAsc  DateSort = "asc"
)

// InvoicePageQuery addresses one offset-based slice of the invoice history.
// A nil Status means no status narrowing.
type InvoicePageQuery struct {
	Status *entity.InvoiceStatus
	Sort   DateSort
	Offset int
	Limit  int
}

// InvoiceRepository defines read access to the payment history.
type InvoiceRepository interface {
	// ListInvoices retrieves one page of invoices ordered by issue date.
	ListInvoices(ctx context.Context, query InvoicePageQuery) ([]*entity.Invoice, error)
}
