package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/tryidoltech/Tryidol-Inv/internal/application/billing"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fakeInvoiceRepo in-memory InvoiceRepository.
type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    map[string][]*entity.InvoiceItem
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}, items: map[string][]*entity.InvoiceItem{}}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	header := *inv
	header.Items = nil
	r.invoices[inv.ID] = &header
	for i := range inv.Items {
		it := inv.Items[i]
		r.items[inv.ID] = append(r.items[inv.ID], &it)
	}
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	return r.items[invoiceID], nil
}

func (r *fakeInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	return out, nil
}

// fakeProfileRepo in-memory ProfileRepository.
type fakeProfileRepo struct {
	profile *entity.Profile
}

func (r *fakeProfileRepo) Get() (*entity.Profile, error)  { return r.profile, nil }
func (r *fakeProfileRepo) Upsert(p *entity.Profile) error { r.profile = p; return nil }

func storedInvoice(t *testing.T, repo *fakeInvoiceRepo) *entity.Invoice {
	t.Helper()
	inv := &entity.Invoice{
		ID:              "inv-1",
		InvID:           "INV-2024-0001",
		CustomerName:    "Acme Traders",
		Email:           "accounts@acme.example",
		Contact:         "+91 98765 43210",
		IssueDate:       time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC),
		DiscountPercent: dec("10"),
		Items: []entity.InvoiceItem{
			{ID: "it-1", InvoiceID: "inv-1", ProductName: "Website Development", Description: "Landing page, Contact form", Amount: dec("100"), Quantity: 2},
			{ID: "it-2", InvoiceID: "inv-1", ProductName: "Logo Design", Description: "3 concepts", Amount: dec("50"), Quantity: 1},
		},
	}
	require.NoError(t, repo.Create(inv))
	return inv
}

func TestGetBill_ComputesFromBothInputs(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	storedInvoice(t, invoiceRepo)
	profileRepo := &fakeProfileRepo{profile: &entity.Profile{OrgName: "Tryidol Technologies", TaxPercent: dec("5")}}

	uc := appbilling.NewBillViewUseCase(invoiceRepo, profileRepo)
	s, err := uc.GetBill(context.Background(), "inv-1")
	require.NoError(t, err)

	assert.True(t, s.Subtotal.Equal(dec("250")))
	assert.True(t, s.TaxAmount.Equal(dec("12.5")))
	assert.True(t, s.GrandTotal.Equal(dec("237.5")))
	assert.Equal(t, 3, s.TotalUnits)
	assert.Len(t, s.Lines, 2)
}

func TestGetBill_MissingProfileYieldsZeroTax(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	storedInvoice(t, invoiceRepo)

	uc := appbilling.NewBillViewUseCase(invoiceRepo, &fakeProfileRepo{})
	s, err := uc.GetBill(context.Background(), "inv-1")
	require.NoError(t, err)

	assert.True(t, s.TaxAmount.IsZero())
	assert.True(t, s.GrandTotal.Equal(dec("225")))
}

func TestGetBill_InvoiceNotFound(t *testing.T) {
	uc := appbilling.NewBillViewUseCase(newFakeInvoiceRepo(), &fakeProfileRepo{})
	_, err := uc.GetBill(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestToBillResponse_DisplayFields(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	storedInvoice(t, invoiceRepo)
	profileRepo := &fakeProfileRepo{profile: &entity.Profile{TaxPercent: dec("5")}}

	uc := appbilling.NewBillViewUseCase(invoiceRepo, profileRepo)
	s, err := uc.GetBill(context.Background(), "inv-1")
	require.NoError(t, err)

	out := appbilling.ToBillResponse(s)
	assert.Equal(t, "237.50 INR", out.GrandTotalINR)
	assert.Equal(t, "3 Jobs", out.TotalUnitsLabel)
	require.Len(t, out.Lines, 2)
	assert.Equal(t, []string{"• Landing page", "• Contact form"}, out.Lines[0].Bullets)
	assert.Equal(t, "2 Jobs", out.Lines[0].Quantity)
	assert.Equal(t, "1 Job", out.Lines[1].Quantity)
	assert.Equal(t, "200.00 INR", out.Lines[0].LineTotal)
}
