package handlers

import (
	"Stash/internal/errs"
	"Stash/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Obtain(username string) (string, error) {
	args := m.Called(username)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Authenticate(token string) (*models.User, error) {
	args := m.Called(token)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTokenService) Refresh(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Revoke(token string) {
	m.Called(token)
}

func (m *MockTokenService) TokenFor(user *models.User) (string, bool) {
	args := m.Called(user)
	return args.String(0), args.Bool(1)
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"token scheme", "Token abc123", "abc123"},
		{"bearer scheme", "Bearer abc123", "abc123"},
		{"bare token", "abc123", "abc123"},
		{"empty header", "", ""},
		{"whitespace only", "   ", ""},
		{"unknown scheme", "Basic dXNlcjpwYXNz", ""},
		{"scheme with padding", "Token   abc123  ", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractToken(tt.header))
		})
	}
}

func TestAuthMiddleware_SetsUserOnValidToken(t *testing.T) {
	mockTokens := new(MockTokenService)
	user := testUser("alice")
	mockTokens.On("Authenticate", "good-token").Return(user, nil)

	app := fiber.New()
	app.Use(AuthMiddleware(mockTokens))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		current := CurrentUser(c)
		if current == nil {
			return c.JSON(fiber.Map{"username": nil})
		}
		return c.JSON(fiber.Map{"username": current.Username})
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token good-token")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockTokens.AssertExpectations(t)
}

func TestAuthMiddleware_InvalidTokenContinuesAnonymously(t *testing.T) {
	mockTokens := new(MockTokenService)
	mockTokens.On("Authenticate", "bad-token").Return(nil, errs.ErrNotFound)

	app := fiber.New()
	app.Use(AuthMiddleware(mockTokens))
	app.Get("/open", func(c *fiber.Ctx) error {
		assert.Nil(t, CurrentUser(c))
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Token bad-token")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuth_RejectsAnonymous(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_PassesAuthenticated(t *testing.T) {
	app := fiber.New()
	app.Use(loginAs(testUser("alice")))
	app.Get("/protected", RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
