package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the header of a stored invoice: who it is addressed to, when it
// was issued and which discount applies. Line items live in InvoiceItem.
type Invoice struct {
	ID              string
	InvID           string // display number printed on the quotation
	CustomerName    string
	Email           string
	Contact         string
	IssueDate       time.Time
	DiscountPercent decimal.Decimal // 0..100
	Items           []InvoiceItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InvoiceItem is one billed line. Description holds comma-delimited clauses;
// each clause is rendered as a separate bullet on the document.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductName string
	Description string
	Amount      decimal.Decimal // unit price, non-negative
	Quantity    int             // number of jobs, >= 1
}
