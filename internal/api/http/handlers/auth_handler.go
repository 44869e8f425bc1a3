package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/craftside/marketplace/internal/api/dto"
	"github.com/craftside/marketplace/internal/auth"
	"github.com/craftside/marketplace/internal/service"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

// AuthHandler exposes signup, login, and password management endpoints.
// Successful signup and login set the session cookie; logout clears it.
type AuthHandler struct {
	auth         *service.AuthService
	secureCookie bool
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: authService, secureCookie: secureCookie}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, token, exp, err := h.auth.Signup(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(auth.SessionCookie(token, h.auth.Codec().TTL(), h.secureCookie))
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(auth.SessionCookie(token, h.auth.Codec().TTL(), h.secureCookie))
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /auth/logout. Sessions are stateless; logout only
// clears the cookie client-side.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(auth.ClearSessionCookie(h.secureCookie))
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

// Me handles GET /auth/me for authenticated callers.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	user, err := h.auth.GetUser(c.Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// ChangePassword handles POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.auth.ChangePassword(c.Context(), identity.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"changed": true}})
}

// RequestPasswordReset handles POST /auth/password/reset/request. The
// response never reveals whether the email is registered.
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	if _, err := h.auth.RequestPasswordReset(c.Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"requested": true}})
}

// ConfirmPasswordReset handles POST /auth/password/reset/confirm.
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetConfirm
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.auth.ConfirmPasswordReset(c.Context(), req.Token, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"reset": true}})
}
