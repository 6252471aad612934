package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tryidoltech/Tryidol-Inv/internal/application/dto"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain"
	domainbilling "github.com/tryidoltech/Tryidol-Inv/internal/domain/billing"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain/entity"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain/repository"
)

// InvoiceUseCase create/read operations on stored invoice records.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo}
}

// CreateInvoice validates and persists a new invoice with its items.
// Validation mirrors the calculator's input constraints so that a stored
// invoice can always be billed.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	issueDate := in.IssueDate
	if issueDate.IsZero() {
		issueDate = now
	}

	inv := &entity.Invoice{
		ID:              uuid.New().String(),
		InvID:           in.InvID,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		Email:           strings.TrimSpace(in.Email),
		Contact:         strings.TrimSpace(in.Contact),
		IssueDate:       issueDate,
		DiscountPercent: in.DiscountPercent,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if inv.InvID == "" {
		inv.InvID = generateInvID(inv.ID, issueDate)
	}

	for i, item := range in.Items {
		if strings.TrimSpace(item.ProductName) == "" {
			return nil, fmt.Errorf("%w: item %d: product name is required", domain.ErrInvalidInput, i+1)
		}
		inv.Items = append(inv.Items, entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			ProductName: strings.TrimSpace(item.ProductName),
			Description: item.Description,
			Amount:      item.Amount,
			Quantity:    item.Quantity,
		})
	}

	// Running the calculator is the single source of input validation
	// (quantity, amount, discount range); bad invoices are never stored.
	if _, err := domainbilling.Compute(inv, nil); err != nil {
		return nil, err
	}

	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return toInvoiceResponse(inv), nil
}

// GetInvoice loads one invoice record with its items.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, fmt.Errorf("get invoice items: %w", err)
	}
	for _, it := range items {
		inv.Items = append(inv.Items, *it)
	}
	return toInvoiceResponse(inv), nil
}

// ListInvoices returns a page of invoice headers (no items).
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	list, err := uc.invoiceRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// generateInvID derives a display number like "INV-2024-3F2A9C1B" from the
// issue year and the first UUID block.
func generateInvID(id string, issueDate time.Time) string {
	block := strings.ToUpper(strings.SplitN(id, "-", 2)[0])
	return fmt.Sprintf("INV-%d-%s", issueDate.Year(), block)
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			ID:          it.ID,
			ProductName: it.ProductName,
			Description: it.Description,
			Amount:      it.Amount,
			Quantity:    it.Quantity,
		})
	}
	return &dto.InvoiceResponse{
		ID:              inv.ID,
		InvID:           inv.InvID,
		CustomerName:    inv.CustomerName,
		Email:           inv.Email,
		Contact:         inv.Contact,
		IssueDate:       inv.IssueDate,
		DiscountPercent: inv.DiscountPercent,
		Items:           items,
	}
}
