package handlers

import (
	"Stash/internal/models"
	"Stash/internal/services"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const userLocalsKey = "user"

// AuthMiddleware resolves the Authorization header to a user and stores it
// in c.Locals. Requests with no or an invalid token continue anonymously;
// protected routes reject them through RequireAuth.
func AuthMiddleware(tokenService services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c.Get("Authorization"))
		if token != "" {
			if user, err := tokenService.Authenticate(token); err == nil {
				c.Locals(userLocalsKey, user)
			}
		}
		return c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !CurrentUser(c).IsAuthenticated() {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalsKey).(*models.User)
	return user
}

// extractToken accepts "Token {t}", "Bearer {t}" or a bare token value.
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	for _, scheme := range []string{"Token ", "Bearer "} {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimSpace(strings.TrimPrefix(header, scheme))
		}
	}
	if strings.ContainsRune(header, ' ') {
		return ""
	}
	return header
}
