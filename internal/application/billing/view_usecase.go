package billing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tryidoltech/Tryidol-Inv/internal/application/dto"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain"
	domainbilling "github.com/tryidoltech/Tryidol-Inv/internal/domain/billing"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain/entity"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain/repository"
)

// BillViewUseCase resolves the two inputs of a bill (invoice record and org
// tax profile), then runs the calculator. The fetches are independent and run
// concurrently; the calculator only runs once both have resolved, and always
// as a full recompute.
type BillViewUseCase struct {
	invoiceRepo repository.InvoiceRepository
	profileRepo repository.ProfileRepository
}

// NewBillViewUseCase builds the use case.
func NewBillViewUseCase(invoiceRepo repository.InvoiceRepository, profileRepo repository.ProfileRepository) *BillViewUseCase {
	return &BillViewUseCase{invoiceRepo: invoiceRepo, profileRepo: profileRepo}
}

// GetBill loads invoice + profile and computes the bill summary.
// Returns domain.ErrNotFound when the invoice does not exist; an absent
// profile is tolerated and yields a zero tax amount.
func (uc *BillViewUseCase) GetBill(ctx context.Context, invoiceID string) (*domainbilling.Summary, error) {
	if invoiceID == "" {
		return nil, domain.ErrInvalidInput
	}

	var (
		inv     *entity.Invoice
		profile *entity.Profile
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inv, err = uc.invoiceRepo.GetByID(invoiceID)
		if err != nil {
			return fmt.Errorf("bill: load invoice: %w", err)
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
		if err != nil {
			return fmt.Errorf("bill: load items: %w", err)
		}
		inv.Items = make([]entity.InvoiceItem, 0, len(items))
		for _, it := range items {
			inv.Items = append(inv.Items, *it)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		profile, err = uc.profileRepo.Get()
		if err != nil {
			return fmt.Errorf("bill: load profile: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domainbilling.Compute(inv, profile)
}

// ToBillResponse maps a Summary to its transport shape, attaching the display
// strings (bullets, pluralized units, INR amounts).
func ToBillResponse(s *domainbilling.Summary) *dto.BillResponse {
	lines := make([]dto.BillLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, dto.BillLineResponse{
			Index:       l.Index,
			ProductName: l.ProductName,
			Bullets:     domainbilling.DescriptionLines(l.Description),
			UnitPrice:   domainbilling.FormatINR(l.Amount),
			Quantity:    domainbilling.Jobs(l.Quantity),
			Amount:      l.Amount,
			LineTotal:   domainbilling.FormatINR(l.LineTotal),
		})
	}
	return &dto.BillResponse{
		InvID:           s.InvID,
		CustomerName:    s.CustomerName,
		Email:           s.Email,
		Contact:         s.Contact,
		IssueDate:       s.IssueDate,
		Lines:           lines,
		Subtotal:        s.Subtotal,
		TaxPercent:      s.TaxPercent,
		TaxAmount:       s.TaxAmount,
		DiscountPercent: s.DiscountPercent,
		DiscountAmount:  s.DiscountAmount,
		GrandTotal:      s.GrandTotal,
		GrandTotalINR:   domainbilling.FormatINR(s.GrandTotal),
		TotalUnits:      s.TotalUnits,
		TotalUnitsLabel: domainbilling.Jobs(s.TotalUnits),
	}
}
