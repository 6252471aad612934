package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body for POST /create/invoice.
type CreateInvoiceRequest struct {
	InvID           string               `json:"inv_id,omitempty"` // generated when empty
	CustomerName    string               `json:"customer_name"`
	Email           string               `json:"email"`
	Contact         string               `json:"contact"`
	IssueDate       time.Time            `json:"issue_date,omitempty"`
	DiscountPercent decimal.Decimal      `json:"discount_percent"`
	Items           []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest one invoice line in a create request.
type InvoiceItemRequest struct {
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
}

// InvoiceResponse invoice record for GET /get/invoice.
type InvoiceResponse struct {
	ID              string                `json:"id"`
	InvID           string                `json:"inv_id"`
	CustomerName    string                `json:"customer_name"`
	Email           string                `json:"email"`
	Contact         string                `json:"contact"`
	IssueDate       time.Time             `json:"issue_date"`
	DiscountPercent decimal.Decimal       `json:"discount_percent"`
	Items           []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse one invoice line in responses.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
}

// ProfileResponse organization profile (tax rate + org info) for GET /get/profile.
type ProfileResponse struct {
	OrgName    string          `json:"org_name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	TaxPercent decimal.Decimal `json:"tax"`
}

// BillLineResponse one resolved line of a computed bill.
type BillLineResponse struct {
	Index       int             `json:"index"`
	ProductName string          `json:"product_name"`
	Bullets     []string        `json:"bullets"`
	UnitPrice   string          `json:"unit_price"` // "x.xx INR"
	Quantity    string          `json:"quantity"`   // "n Job(s)"
	Amount      decimal.Decimal `json:"amount"`
	LineTotal   string          `json:"line_total"` // "x.xx INR"
}

// BillResponse the fully resolved bill summary for GET /get/invoice/:id/bill.
// Raw decimals are included alongside the display strings so clients can do
// their own formatting.
type BillResponse struct {
	InvID           string             `json:"inv_id"`
	CustomerName    string             `json:"customer_name"`
	Email           string             `json:"email"`
	Contact         string             `json:"contact"`
	IssueDate       time.Time          `json:"issue_date"`
	Lines           []BillLineResponse `json:"lines"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	TaxPercent      decimal.Decimal    `json:"tax_percent"`
	TaxAmount       decimal.Decimal    `json:"tax_amount"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
	DiscountAmount  decimal.Decimal    `json:"discount_amount"`
	GrandTotal      decimal.Decimal    `json:"grand_total"`
	GrandTotalINR   string             `json:"grand_total_inr"` // "x.xx INR"
	TotalUnits      int                `json:"total_units"`
	TotalUnitsLabel string             `json:"total_units_label"` // "n Job(s)"
}
