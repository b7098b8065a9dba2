package postgres

import (
	"context"

	"refboard/internal/domain/entity"
	"refboard/internal/domain/repository"
	"refboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// invoiceRepository implements the repository.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// ListInvoices retrieves one page of invoices ordered by issue date.
func (repo *invoiceRepository) ListInvoices(ctx context.Context, query repository.InvoicePageQuery) ([]*entity.Invoice, error) {
	order := "issue_date DESC"
	if query.Sort == repository.DateSortAsc {
		order = "issue_date ASC"
	}

	tx := repo.db.WithContext(ctx).Order(order)
	if query.Status != nil {
		tx = tx.Where("status = ?", string(*query.Status))
	}
	if query.Offset > 0 {
		tx = tx.Offset(query.Offset)
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	var invoiceModels []*model.InvoiceModel
	if err := tx.Find(&invoiceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	invoices := make([]*entity.Invoice, 0, len(invoiceModels))
	for _, invoiceM := range invoiceModels {
		invoices = append(invoices, toInvoiceDomain(invoiceM))
	}

	return invoices, nil
}

// toInvoiceDomain converts a GORM InvoiceModel to a domain Invoice entity.
func toInvoiceDomain(data *model.InvoiceModel) *entity.Invoice {
	if data == nil {
		return nil
	}

	invoice := &entity.Invoice{
		ID:             data.ID,
		SubscriptionID: data.SubscriptionID,
		IssueDate:      data.IssueDate,
		Description:    data.Description,
		Amount:         data.Amount,
		Status:         entity.InvoiceStatus(data.Status),
	}
	if data.ReceiptURL != nil {
		invoice.ReceiptURL = *data.ReceiptURL
	}

	return invoice
}
