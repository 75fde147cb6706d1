package handlers

import (
	"Stash/internal/errs"
	"Stash/internal/models"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) ShareLocation(actor *models.User, locationID, granteeID uuid.UUID, role models.Role) (*models.LocationShare, error) {
	args := m.Called(actor, locationID, granteeID, role)
	if share, ok := args.Get(0).(*models.LocationShare); ok {
		return share, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareService) UnshareLocation(actor *models.User, locationID, granteeID uuid.UUID) error {
	args := m.Called(actor, locationID, granteeID)
	return args.Error(0)
}

func (m *MockShareService) ListLocationShares(actor *models.User, locationID uuid.UUID) ([]models.LocationShare, error) {
	args := m.Called(actor, locationID)
	if shares, ok := args.Get(0).([]models.LocationShare); ok {
		return shares, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareService) ShareItem(actor *models.User, itemID, granteeID uuid.UUID, role models.Role) (*models.ItemShare, error) {
	args := m.Called(actor, itemID, granteeID, role)
	if share, ok := args.Get(0).(*models.ItemShare); ok {
		return share, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareService) UnshareItem(actor *models.User, itemID, granteeID uuid.UUID) error {
	args := m.Called(actor, itemID, granteeID)
	return args.Error(0)
}

func (m *MockShareService) ListItemShares(actor *models.User, itemID uuid.UUID) ([]models.ItemShare, error) {
	args := m.Called(actor, itemID)
	if shares, ok := args.Get(0).([]models.ItemShare); ok {
		return shares, args.Error(1)
	}
	return nil, args.Error(1)
}

// loginAs injects a user into the request context the way AuthMiddleware
// would after a successful token lookup.
func loginAs(user *models.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

func testUser(username string) *models.User {
	user := &models.User{Username: username, IsActive: true}
	user.ID = uuid.New()
	return user
}

func newShareApp(actor *models.User) (*fiber.App, *MockShareService) {
	app := fiber.New()
	mockService := new(MockShareService)
	handler := NewShareHandler(mockService)

	app.Use(loginAs(actor))
	app.Post("/locations/:id/shares", handler.ShareLocation)
	app.Delete("/locations/:id/shares/:userId", handler.UnshareLocation)
	app.Get("/locations/:id/shares", handler.ListLocationShares)
	app.Post("/items/:id/shares", handler.ShareItem)
	app.Delete("/items/:id/shares/:userId", handler.UnshareItem)
	return app, mockService
}

func TestShareLocation_Success(t *testing.T) {
	alice := testUser("alice")
	app, mockService := newShareApp(alice)

	locationID := uuid.New()
	granteeID := uuid.New()
	share := &models.LocationShare{
		LocationID: locationID,
		UserID:     granteeID,
		Role:       models.RoleEditor,
		User:       &models.User{Username: "bob"},
	}
	share.ID = uuid.New()
	mockService.On("ShareLocation", alice, locationID, granteeID, models.RoleEditor).
		Return(share, nil)

	body, _ := json.Marshal(map[string]interface{}{"user_id": granteeID, "role": "editor"})
	req := httptest.NewRequest(http.MethodPost, "/locations/"+locationID.String()+"/shares", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got map[string]interface{}
	respBody, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(respBody, &got))
	assert.Equal(t, "editor", got["role"])
	assert.Equal(t, "bob", got["username"])
	mockService.AssertExpectations(t)
}

func TestShareLocation_DefaultsToViewer(t *testing.T) {
	alice := testUser("alice")
	app, mockService := newShareApp(alice)

	locationID := uuid.New()
	granteeID := uuid.New()
	share := &models.LocationShare{LocationID: locationID, UserID: granteeID, Role: models.RoleViewer}
	mockService.On("ShareLocation", alice, locationID, granteeID, models.RoleViewer).
		Return(share, nil)

	body, _ := json.Marshal(map[string]interface{}{"user_id": granteeID})
	req := httptest.NewRequest(http.MethodPost, "/locations/"+locationID.String()+"/shares", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestShareLocation_MissingUserID(t *testing.T) {
	app, mockService := newShareApp(testUser("alice"))

	body, _ := json.Marshal(map[string]interface{}{"role": "viewer"})
	req := httptest.NewRequest(http.MethodPost, "/locations/"+uuid.NewString()+"/shares", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockService.AssertNotCalled(t, "ShareLocation")
}

func TestShareLocation_InvalidLocationID(t *testing.T) {
	app, mockService := newShareApp(testUser("alice"))

	body, _ := json.Marshal(map[string]interface{}{"user_id": uuid.New()})
	req := httptest.NewRequest(http.MethodPost, "/locations/not-a-uuid/shares", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockService.AssertNotCalled(t, "ShareLocation")
}

func TestShareLocation_ErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{"permission denied", errs.ErrPermissionDenied, http.StatusForbidden},
		{"resource missing", errs.ErrNotFound, http.StatusNotFound},
		{"self share", errs.ErrSelfShare, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alice := testUser("alice")
			app, mockService := newShareApp(alice)
			mockService.On("ShareLocation", alice, mock.Anything, mock.Anything, models.RoleViewer).
				Return(nil, tt.serviceErr)

			body, _ := json.Marshal(map[string]interface{}{"user_id": uuid.New()})
			req := httptest.NewRequest(http.MethodPost, "/locations/"+uuid.NewString()+"/shares", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, resp.StatusCode)
		})
	}
}

func TestUnshareLocation_Success(t *testing.T) {
	alice := testUser("alice")
	app, mockService := newShareApp(alice)

	locationID := uuid.New()
	granteeID := uuid.New()
	mockService.On("UnshareLocation", alice, locationID, granteeID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/locations/"+locationID.String()+"/shares/"+granteeID.String(), nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestUnshareLocation_NotFound(t *testing.T) {
	alice := testUser("alice")
	app, mockService := newShareApp(alice)

	mockService.On("UnshareLocation", alice, mock.Anything, mock.Anything).Return(errs.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/locations/"+uuid.NewString()+"/shares/"+uuid.NewString(), nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListLocationShares_Success(t *testing.T) {
	alice := testUser("alice")
	app, mockService := newShareApp(alice)

	locationID := uuid.New()
	shares := []models.LocationShare{
		{LocationID: locationID, UserID: uuid.New(), Role: models.RoleViewer, User: &models.User{Username: "bob"}},
		{LocationID: locationID, UserID: uuid.New(), Role: models.RoleEditor, User: &models.User{Username: "carol"}},
	}
	mockService.On("ListLocationShares", alice, locationID).Return(shares, nil)

	req := httptest.NewRequest(http.MethodGet, "/locations/"+locationID.String()+"/shares", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []map[string]interface{}
	respBody, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(respBody, &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "bob", got[0]["username"])
	assert.Equal(t, "carol", got[1]["username"])
}

func TestShareItem_Success(t *testing.T) {
	alice := testUser("alice")
	app, mockService := newShareApp(alice)

	itemID := uuid.New()
	granteeID := uuid.New()
	share := &models.ItemShare{ItemID: itemID, UserID: granteeID, Role: models.RoleViewer}
	mockService.On("ShareItem", alice, itemID, granteeID, models.RoleViewer).Return(share, nil)

	body, _ := json.Marshal(map[string]interface{}{"user_id": granteeID, "role": "viewer"})
	req := httptest.NewRequest(http.MethodPost, "/items/"+itemID.String()+"/shares", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestUnshareItem_PermissionDenied(t *testing.T) {
	bob := testUser("bob")
	app, mockService := newShareApp(bob)

	mockService.On("UnshareItem", bob, mock.Anything, mock.Anything).Return(errs.ErrPermissionDenied)

	req := httptest.NewRequest(http.MethodDelete, "/items/"+uuid.NewString()+"/shares/"+uuid.NewString(), nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
