package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tryidoltech/Tryidol-Inv/internal/application/auth"
	"github.com/tryidoltech/Tryidol-Inv/internal/application/billing"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	InvoiceUC  *billing.InvoiceUseCase
	ProfileUC  *billing.ProfileUseCase
	BillViewUC *billing.BillViewUseCase
	PDFUC      *billing.QuotationPDFUseCase
	RenderHTML HTMLRenderer
	JWTSecret  string
	CookieDays int
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieDays)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	profileHandler := NewProfileHandler(deps.ProfileUC)
	billHandler := NewBillHandler(deps.BillViewUC, deps.PDFUC, deps.RenderHTML)

	// Public
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Get("/get/invoice", invoiceHandler.GetByID)
	app.Get("/get/invoice/:id/bill", billHandler.GetBill)
	app.Get("/get/invoice/:id/pdf", billHandler.DownloadPDF)
	app.Get("/view/invoice/:id", billHandler.ViewBill)

	// Protected (Bearer token or session cookie)
	authed := AuthMiddleware(deps.JWTSecret)
	app.Get("/me", authed, authHandler.Me)
	app.Get("/get/profile", authed, profileHandler.Get)
	app.Get("/get/invoices", authed, invoiceHandler.List)
	app.Post("/create/invoice", authed, RequireRole(entity.RoleAdmin), invoiceHandler.Create)
}
