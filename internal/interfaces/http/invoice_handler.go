package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tryidoltech/Tryidol-Inv/internal/application/billing"
	"github.com/tryidoltech/Tryidol-Inv/internal/application/dto"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain"
)

// InvoiceHandler handles invoice CRUD.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler builds the invoice handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// GetByID godoc
// @Summary      Fetch one invoice with its items
// @Tags         invoices
// @Produce      json
// @Param        id  query  string  true  "invoice id"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /get/invoice [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("query parameter id is required"))
	}
	out, err := h.uc.GetInvoice(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("invoice not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("could not load invoice"))
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInvoiceRequest  true  "invoice payload"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /create/invoice [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("invalid request body"))
	}
	out, err := h.uc.CreateInvoice(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("could not create invoice"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List godoc
// @Summary      List invoices, newest first
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "page size"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {object}  dto.Response
// @Router       /get/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("invalid pagination parameters"))
	}
	page.DefaultPage()
	out, err := h.uc.ListInvoices(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("could not list invoices"))
	}
	return c.JSON(dto.OK(out))
}
