package handlers

import (
	"Stash/internal/mapper"
	"Stash/internal/models"
	"Stash/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ShareHandler struct {
	shareService services.ShareService
}

func NewShareHandler(shareService services.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

type shareRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

func (h *ShareHandler) ShareLocation(c *fiber.Ctx) error {
	locationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid location ID"})
	}

	var req shareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if req.UserID == uuid.Nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}
	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleViewer
	}

	share, err := h.shareService.ShareLocation(CurrentUser(c), locationID, req.UserID, role)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToLocationShareDTO(share))
}

func (h *ShareHandler) UnshareLocation(c *fiber.Ctx) error {
	locationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid location ID"})
	}
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid user ID"})
	}

	if err := h.shareService.UnshareLocation(CurrentUser(c), locationID, userID); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ShareHandler) ListLocationShares(c *fiber.Ctx) error {
	locationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid location ID"})
	}

	shares, err := h.shareService.ListLocationShares(CurrentUser(c), locationID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(mapper.ToLocationShareDTOs(shares))
}

func (h *ShareHandler) ShareItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid item ID"})
	}

	var req shareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if req.UserID == uuid.Nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}
	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleViewer
	}

	share, err := h.shareService.ShareItem(CurrentUser(c), itemID, req.UserID, role)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToItemShareDTO(share))
}

func (h *ShareHandler) UnshareItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid item ID"})
	}
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid user ID"})
	}

	if err := h.shareService.UnshareItem(CurrentUser(c), itemID, userID); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ShareHandler) ListItemShares(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid item ID"})
	}

	shares, err := h.shareService.ListItemShares(CurrentUser(c), itemID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(mapper.ToItemShareDTOs(shares))
}
