package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile holds the issuing organization data, including the tax rate applied
// to every bill. There is a single profile per deployment.
type Profile struct {
	ID         string
	OrgName    string
	Email      string
	Phone      string
	Address    string
	TaxPercent decimal.Decimal // 0..100
	UpdatedAt  time.Time
}
