package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tryidoltech/Tryidol-Inv/internal/application/auth"
	"github.com/tryidoltech/Tryidol-Inv/internal/application/dto"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain"
)

// AuthHandler handles registration, login and the account endpoint.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	cookieDays int
}

// NewAuthHandler builds the auth handler. cookieDays controls how long the
// session cookie lives and matches the token expiry.
func NewAuthHandler(uc *auth.AuthUseCase, cookieDays int) *AuthHandler {
	return &AuthHandler{uc: uc, cookieDays: cookieDays}
}

// Register godoc
// @Summary      Register an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("invalid request body"))
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.Err("email is already registered"))
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("name, email and a password of at least 6 characters are required"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("could not register user"))
	}
	h.setTokenCookie(c, out.Token)
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("invalid request body"))
	}
	out, err := h.uc.Login(in)
	if err != nil {
		// No cookie is written on a failed login.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("invalid credentials"))
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("email and password are required"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("could not log in"))
	}
	h.setTokenCookie(c, out.Token)
	return c.JSON(dto.OK(out))
}

// Me godoc
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Profile(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("user not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("could not load account"))
	}
	return c.JSON(dto.OK(out))
}

func (h *AuthHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.cookieDays) * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
