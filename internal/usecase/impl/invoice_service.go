package impl

import (
	"context"

	"refboard/config"
	"refboard/internal/domain/repository"
	"refboard/internal/usecase"

	"github.com/pkg/errors"
)

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	config      *config.Config
}

// NewInvoiceService creates a new payment history service instance
func NewInvoiceService(invoiceRepo repository.InvoiceRepository, cfg *config.Config) usecase.InvoiceUsecase {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		config:      cfg,
	}
}

// GetInvoicePage retrieves one zero-based page of the payment history. The page
// is full when the repository returns exactly the page size, which is the only
// signal that more rows may follow.
func (s *invoiceService) GetInvoicePage(ctx context.Context, page int, query usecase.InvoiceQuery) (*usecase.InvoicePage, error) {
	if page < 0 {
		page = 0
	}

	sort := query.Sort
	if sort == "" {
		sort = repository.DateSortDesc
	}

	pageSize := s.config.History.PageSize
	invoices, err := s.invoiceRepo.ListInvoices(ctx, repository.InvoicePageQuery{
		Status: query.Status,
		Sort:   sort,
		Offset: page * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	return &usecase.InvoicePage{
		Invoices: invoices,
		Page:     page,
		HasMore:  len(invoices) == pageSize,
	}, nil
}
