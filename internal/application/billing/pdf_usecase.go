package billing

import (
	"context"
	"fmt"

	"github.com/tryidoltech/Tryidol-Inv/internal/domain"
)

// QuotationPDFUseCase produces the downloadable quotation for an invoice.
type QuotationPDFUseCase struct {
	billView  *BillViewUseCase
	generator QuotationGenerator
}

// NewQuotationPDFUseCase builds the use case.
func NewQuotationPDFUseCase(billView *BillViewUseCase, generator QuotationGenerator) *QuotationPDFUseCase {
	return &QuotationPDFUseCase{billView: billView, generator: generator}
}

// Download computes the bill and renders it as a PDF.
//
// Returns:
//   - (pdfBytes, filename, nil) on success.
//   - domain.ErrNotFound when the invoice does not exist.
//   - domain.ErrRender (wrapped) when layout/generation fails.
//
// The filename is derived deterministically from the customer name; customers
// sharing a name collide, which is accepted.
func (uc *QuotationPDFUseCase) Download(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	summary, err := uc.billView.GetBill(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateQuotationPDF(ctx, summary)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrRender, err)
	}

	return pdfBytes, fmt.Sprintf("Invoice_%s.pdf", summary.CustomerName), nil
}
