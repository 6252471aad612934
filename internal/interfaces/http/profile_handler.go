package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tryidoltech/Tryidol-Inv/internal/application/billing"
	"github.com/tryidoltech/Tryidol-Inv/internal/application/dto"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain"
)

// ProfileHandler serves the organization profile that feeds tax settings.
type ProfileHandler struct {
	uc *billing.ProfileUseCase
}

// NewProfileHandler builds the profile handler.
func NewProfileHandler(uc *billing.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get godoc
// @Summary      Organization profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /get/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("profile not configured"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("could not load profile"))
	}
	return c.JSON(dto.OK(out))
}
