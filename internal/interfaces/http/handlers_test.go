package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tryidoltech/Tryidol-Inv/internal/application/auth"
	appbilling "github.com/tryidoltech/Tryidol-Inv/internal/application/billing"
	domainbilling "github.com/tryidoltech/Tryidol-Inv/internal/domain/billing"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain/entity"
	apphttp "github.com/tryidoltech/Tryidol-Inv/internal/interfaces/http"
	"github.com/tryidoltech/Tryidol-Inv/internal/infrastructure/view"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// In-memory fakes for the persistence ports.

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}, byID: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error)       { return r.byID[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) { return r.byEmail[email], nil }
func (r *fakeUserRepo) Update(u *entity.User) error                   { return r.Create(u) }
func (r *fakeUserRepo) Delete(id string) error                        { delete(r.byID, id); return nil }

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
	items := make([]*entity.InvoiceItem, len(inv.Items))
	for i := range inv.Items {
		it := inv.Items[i]
		items[i] = &it
	}
	r.items[inv.ID] = items
	return nil
}
func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) { return r.invoices[id], nil }
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

type fakeProfileRepo struct{ profile *entity.Profile }

func (r *fakeProfileRepo) Get() (*entity.Profile, error)  { return r.profile, nil }
func (r *fakeProfileRepo) Upsert(p *entity.Profile) error { r.profile = p; return nil }

type fakeGenerator struct{ fail bool }

func (g *fakeGenerator) GenerateQuotationPDF(_ context.Context, _ *domainbilling.Summary) ([]byte, error) {
	if g.fail {
		return nil, errors.New("engine failure")
	}
	return []byte("%PDF-1.4 stub"), nil
}

const seededInvoiceID = "11111111-1111-1111-1111-111111111111"

// buildAPIApp wires the full router over in-memory fakes and seeds one
// invoice (items 100x2 + 50x1, discount 10%) and a profile with 5% tax.
func buildAPIApp(t *testing.T, gen appbilling.QuotationGenerator) *fiber.App {
	t.Helper()

	users := newFakeUserRepo()
	invoices := newFakeInvoiceRepo()
	profiles := &fakeProfileRepo{profile: &entity.Profile{
		ID:         "profile",
		OrgName:    "Tryidol Technologies",
		Email:      "hello@tryidol.example",
		Phone:      "+91 90000 00000",
		Address:    "Nagpur, India",
		TaxPercent: dec("5"),
	}}

	require.NoError(t, invoices.Create(&entity.Invoice{
		ID:              seededInvoiceID,
		InvID:           "INV-2024-SEED",
		CustomerName:    "Acme Traders",
		Email:           "accounts@acme.example",
		Contact:         "+91 98765 43210",
		IssueDate:       time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC),
		DiscountPercent: dec("10"),
		Items: []entity.InvoiceItem{
			{ID: "i1", InvoiceID: seededInvoiceID, ProductName: "Website Development", Description: "Landing page, Contact form", Amount: dec("100"), Quantity: 2},
			{ID: "i2", InvoiceID: seededInvoiceID, ProductName: "Logo Design", Description: "3 concepts", Amount: dec("50"), Quantity: 1},
		},
	}))

	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:  testJWTSecret,
		ExpDays: testExpDays,
		Issuer:  testIssuer,
	})
	billView := appbilling.NewBillViewUseCase(invoices, profiles)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		InvoiceUC:  appbilling.NewInvoiceUseCase(invoices),
		ProfileUC:  appbilling.NewProfileUseCase(profiles),
		BillViewUC: billView,
		PDFUC:      appbilling.NewQuotationPDFUseCase(billView, gen),
		RenderHTML: view.RenderBill,
		JWTSecret:  testJWTSecret,
		CookieDays: testExpDays,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func findTokenCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func TestRegister_SetsSessionCookie(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})

	resp := doJSON(t, app, http.MethodPost, "/register", fiber.Map{
		"name": "Asha", "email": "asha@example.com", "password": "secret123",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	cookie := findTokenCookie(resp)
	require.NotNil(t, cookie, "register must set the token cookie")
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	wantExpiry := time.Now().Add(testExpDays * 24 * time.Hour)
	assert.WithinDuration(t, wantExpiry, cookie.Expires, time.Hour)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})
	payload := fiber.Map{"name": "Asha", "email": "asha@example.com", "password": "secret123"}

	first := doJSON(t, app, http.MethodPost, "/register", payload)
	first.Body.Close()
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := doJSON(t, app, http.MethodPost, "/register", payload)
	defer second.Body.Close()
	assert.Equal(t, http.StatusConflict, second.StatusCode)
}

func TestRegister_WeakPassword(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})

	resp := doJSON(t, app, http.MethodPost, "/register", fiber.Map{
		"name": "Asha", "email": "asha@example.com", "password": "abc",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_SetsCookieOnSuccessOnly(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})
	reg := doJSON(t, app, http.MethodPost, "/register", fiber.Map{
		"name": "Asha", "email": "asha@example.com", "password": "secret123",
	})
	reg.Body.Close()

	good := doJSON(t, app, http.MethodPost, "/login", fiber.Map{
		"email": "asha@example.com", "password": "secret123",
	})
	defer good.Body.Close()
	assert.Equal(t, http.StatusOK, good.StatusCode)
	assert.NotNil(t, findTokenCookie(good))

	bad := doJSON(t, app, http.MethodPost, "/login", fiber.Map{
		"email": "asha@example.com", "password": "wrong-password",
	})
	defer bad.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, bad.StatusCode)
	assert.Nil(t, findTokenCookie(bad), "failed login must not set a cookie")
}

func TestLogin_UnknownEmail(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})

	resp := doJSON(t, app, http.MethodPost, "/login", fiber.Map{
		"email": "nobody@example.com", "password": "whatever1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, findTokenCookie(resp))
}

func TestGetProfile_RequiresAuth(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})

	anon := doJSON(t, app, http.MethodGet, "/get/profile", nil)
	defer anon.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, anon.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/get/profile", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, "user"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Tryidol Technologies")
	assert.Contains(t, string(body), `"tax":"5"`)
}

func TestGetInvoice_ByQueryID(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})

	resp := doJSON(t, app, http.MethodGet, "/get/invoice?id="+seededInvoiceID, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Acme Traders")
	assert.Contains(t, string(body), "Website Development")
}

func TestGetInvoice_NotFound(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})

	resp := doJSON(t, app, http.MethodGet, "/get/invoice?id=missing", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetInvoice_MissingID(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})

	resp := doJSON(t, app, http.MethodGet, "/get/invoice", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetBill_ComputedTotals(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})

	resp := doJSON(t, app, http.MethodGet, "/get/invoice/"+seededInvoiceID+"/bill", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	assert.Contains(t, s, `"subtotal":"250"`)
	assert.Contains(t, s, `"tax_amount":"12.5"`)
	assert.Contains(t, s, `"discount_amount":"25"`)
	assert.Contains(t, s, "237.50 INR")
	assert.Contains(t, s, "3 Jobs")
}

func TestDownloadPDF(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})

	resp := doJSON(t, app, http.MethodGet, "/get/invoice/"+seededInvoiceID+"/pdf", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Invoice_Acme Traders.pdf")

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-1.4 stub", string(body))
}

func TestDownloadPDF_GeneratorFailure(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{fail: true})

	resp := doJSON(t, app, http.MethodGet, "/get/invoice/"+seededInvoiceID+"/pdf", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "could not render document")
}

func TestViewBill_HTML(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})

	resp := doJSON(t, app, http.MethodGet, "/view/invoice/"+seededInvoiceID, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	assert.Contains(t, s, "Quotation")
	assert.Contains(t, s, "237.50 INR")
	assert.Contains(t, s, "• Landing page")
}

func TestCreateInvoice_AdminOnly(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})
	payload := fiber.Map{
		"customer_name": "New Customer",
		"email":         "new@example.com",
		"contact":       "+91 91111 11111",
		"items": []fiber.Map{
			{"product_name": "SEO Audit", "description": "On-page, Off-page", "amount": "120", "quantity": 1},
		},
	}

	asUser := httptest.NewRequest(http.MethodPost, "/create/invoice", jsonBody(t, payload))
	asUser.Header.Set("Content-Type", "application/json")
	asUser.Header.Set("Authorization", "Bearer "+tokenForRole(t, "user"))
	respUser, err := app.Test(asUser, -1)
	require.NoError(t, err)
	defer respUser.Body.Close()
	assert.Equal(t, http.StatusForbidden, respUser.StatusCode)

	asAdmin := httptest.NewRequest(http.MethodPost, "/create/invoice", jsonBody(t, payload))
	asAdmin.Header.Set("Content-Type", "application/json")
	asAdmin.Header.Set("Authorization", "Bearer "+tokenForRole(t, "admin"))
	respAdmin, err := app.Test(asAdmin, -1)
	require.NoError(t, err)
	defer respAdmin.Body.Close()
	assert.Equal(t, http.StatusCreated, respAdmin.StatusCode)
}

func TestListInvoices_CookieAuth(t *testing.T) {
	app := buildAPIApp(t, &fakeGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/get/invoices", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: tokenForRole(t, "user")})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INV-2024-SEED")
}

func jsonBody(t *testing.T, payload any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}
