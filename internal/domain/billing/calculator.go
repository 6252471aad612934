// Package billing holds the bill calculator: the pure arithmetic that turns an
// invoice plus the organization tax profile into a fully resolved bill summary.
//
//	subtotal       = Σ(amount × quantity)
//	taxAmount      = subtotal × taxPercent / 100
//	discountAmount = subtotal × discountPercent / 100
//	grandTotal     = subtotal + taxAmount − discountAmount
//
// All math runs on decimal.Decimal; rounding to two places happens only when a
// value is formatted for display, never during accumulation.
package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// Line is a resolved line item: the stored fields plus the computed line total.
type Line struct {
	Index       int
	ProductName string
	Description string
	Amount      decimal.Decimal
	Quantity    int
	LineTotal   decimal.Decimal // Amount × Quantity
}

// Summary is the derived bill. It is never persisted; any change to the
// invoice or the tax profile triggers a full recompute.
type Summary struct {
	InvID        string
	CustomerName string
	Email        string
	Contact      string
	IssueDate    time.Time

	Lines           []Line
	Subtotal        decimal.Decimal
	TaxPercent      decimal.Decimal
	TaxAmount       decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	GrandTotal      decimal.Decimal
	TotalUnits      int
}

// Compute derives the Summary for an invoice. A nil profile (or zero tax rate)
// is not an error: the tax amount is simply zero. Out-of-range inputs return
// domain.ErrInvalidInput instead of silently producing negative totals.
func Compute(inv *entity.Invoice, profile *entity.Profile) (*Summary, error) {
	if inv == nil {
		return nil, fmt.Errorf("%w: invoice is required", domain.ErrInvalidInput)
	}
	if !percentInRange(inv.DiscountPercent) {
		return nil, fmt.Errorf("%w: discount percent %s out of range [0,100]", domain.ErrInvalidInput, inv.DiscountPercent)
	}

	taxPercent := decimal.Zero
	if profile != nil {
		if !percentInRange(profile.TaxPercent) {
			return nil, fmt.Errorf("%w: tax percent %s out of range [0,100]", domain.ErrInvalidInput, profile.TaxPercent)
		}
		taxPercent = profile.TaxPercent
	}

	subtotal := decimal.Zero
	totalUnits := 0
	lines := make([]Line, 0, len(inv.Items))
	for i, item := range inv.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %d: quantity must be at least 1", domain.ErrInvalidInput, i+1)
		}
		if item.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: item %d: amount must be non-negative", domain.ErrInvalidInput, i+1)
		}
		lineTotal := item.Amount.Mul(decimal.NewFromInt(int64(item.Quantity)))
		lines = append(lines, Line{
			Index:       i + 1,
			ProductName: item.ProductName,
			Description: item.Description,
			Amount:      item.Amount,
			Quantity:    item.Quantity,
			LineTotal:   lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
		totalUnits += item.Quantity
	}

	taxAmount := subtotal.Mul(taxPercent).Div(oneHundred)
	discountAmount := subtotal.Mul(inv.DiscountPercent).Div(oneHundred)
	grandTotal := subtotal.Add(taxAmount).Sub(discountAmount)

	return &Summary{
		InvID:           inv.InvID,
		CustomerName:    inv.CustomerName,
		Email:           inv.Email,
		Contact:         inv.Contact,
		IssueDate:       inv.IssueDate,
		Lines:           lines,
		Subtotal:        subtotal,
		TaxPercent:      taxPercent,
		TaxAmount:       taxAmount,
		DiscountPercent: inv.DiscountPercent,
		DiscountAmount:  discountAmount,
		GrandTotal:      grandTotal,
		TotalUnits:      totalUnits,
	}, nil
}

func percentInRange(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(oneHundred)
}
