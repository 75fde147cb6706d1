package handlers

import (
	"Stash/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	tokenService services.TokenService
}

func NewAuthHandler(tokenService services.TokenService) *AuthHandler {
	return &AuthHandler{tokenService: tokenService}
}

func (h *AuthHandler) ObtainToken(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if req.Username == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "username is required"})
	}

	token, err := h.tokenService.Obtain(req.Username)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	user := CurrentUser(c)
	token, err := h.tokenService.Refresh(user)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}

func (h *AuthHandler) RevokeToken(c *fiber.Ctx) error {
	token := extractToken(c.Get("Authorization"))
	if token != "" {
		h.tokenService.Revoke(token)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *AuthHandler) TokenInfo(c *fiber.Ctx) error {
	user := CurrentUser(c)
	return c.JSON(fiber.Map{
		"user_id":      user.ID,
		"username":     user.Username,
		"is_superuser": user.IsSuperuser,
	})
}
