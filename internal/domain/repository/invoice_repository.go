package repository

import "github.com/tryidoltech/Tryidol-Inv/internal/domain/entity"

// InvoiceRepository is the persistence port for Invoice and its line items.
type InvoiceRepository interface {
	// Create persists the header and all items.
	Create(invoice *entity.Invoice) error
	// GetByID loads the header only; (nil, nil) when absent.
	GetByID(id string) (*entity.Invoice, error)
	// GetItemsByInvoiceID loads the ordered line items.
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	List(limit, offset int) ([]*entity.Invoice, error)
}
