package billing

import (
	"context"

	domainbilling "github.com/tryidoltech/Tryidol-Inv/internal/domain/billing"
)

// QuotationGenerator renders a computed bill as the exported quotation PDF.
type QuotationGenerator interface {
	GenerateQuotationPDF(ctx context.Context, summary *domainbilling.Summary) ([]byte, error)
}
