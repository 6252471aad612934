package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tryidoltech/Tryidol-Inv/internal/application/billing"
	"github.com/tryidoltech/Tryidol-Inv/internal/application/dto"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain"
	domainbilling "github.com/tryidoltech/Tryidol-Inv/internal/domain/billing"
)

// HTMLRenderer renders the screen form of a bill summary.
type HTMLRenderer func(*domainbilling.Summary) ([]byte, error)

// BillHandler serves the three renditions of a bill: JSON summary, PDF
// attachment, and HTML screen form.
type BillHandler struct {
	view       *billing.BillViewUseCase
	pdf        *billing.QuotationPDFUseCase
	renderHTML HTMLRenderer
}

// NewBillHandler builds the bill handler.
func NewBillHandler(view *billing.BillViewUseCase, pdf *billing.QuotationPDFUseCase, renderHTML HTMLRenderer) *BillHandler {
	return &BillHandler{view: view, pdf: pdf, renderHTML: renderHTML}
}

// GetBill godoc
// @Summary      Computed bill for an invoice
// @Tags         bills
// @Produce      json
// @Param        id  path  string  true  "invoice id"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /get/invoice/{id}/bill [get]
func (h *BillHandler) GetBill(c *fiber.Ctx) error {
	summary, err := h.view.GetBill(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.billError(c, err)
	}
	return c.JSON(dto.OK(billing.ToBillResponse(summary)))
}

// DownloadPDF godoc
// @Summary      Quotation PDF for an invoice
// @Tags         bills
// @Produce      application/pdf
// @Param        id  path  string  true  "invoice id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /get/invoice/{id}/pdf [get]
func (h *BillHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.Download(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.billError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}

// ViewBill godoc
// @Summary      HTML screen form of a bill
// @Tags         bills
// @Produce      html
// @Param        id  path  string  true  "invoice id"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /view/invoice/{id} [get]
func (h *BillHandler) ViewBill(c *fiber.Ctx) error {
	summary, err := h.view.GetBill(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.billError(c, err)
	}
	page, err := h.renderHTML(summary)
	if err != nil {
		return h.billError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page)
}

func (h *BillHandler) billError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("invoice not found"))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err(err.Error()))
	case errors.Is(err, domain.ErrRender):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("could not render document"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("could not build bill"))
	}
}
