package handlers

import (
	"Stash/internal/mapper"
	"Stash/internal/models"
	"Stash/internal/repository"
	"Stash/internal/services"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemService      services.ItemService
	analyticsService services.AnalyticsService
}

func NewItemHandler(itemService services.ItemService, analyticsService services.AnalyticsService) *ItemHandler {
	return &ItemHandler{itemService: itemService, analyticsService: analyticsService}
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req struct {
		Name        string      `json:"name"`
		Description string      `json:"description"`
		Quantity    int         `json:"quantity"`
		Condition   string      `json:"condition"`
		LocationID  *uuid.UUID  `json:"location_id"`
		CategoryID  *uuid.UUID  `json:"category_id"`
		TagIDs      []uuid.UUID `json:"tag_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	params := services.ItemCreate{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		LocationID:  req.LocationID,
		CategoryID:  req.CategoryID,
		TagIDs:      req.TagIDs,
	}
	if req.Condition != "" {
		condition := models.Condition(req.Condition)
		if !condition.Valid() {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid condition"})
		}
		params.Condition = condition
	}

	item, err := h.itemService.CreateItem(CurrentUser(c), params)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}

func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid item ID"})
	}

	user := CurrentUser(c)
	detail, err := h.itemService.GetItem(user, id)
	if err != nil {
		return errorResponse(c, err)
	}

	relatedType := models.RelatedItem
	h.analyticsService.Track(user, models.EventViewItem, &relatedType, &id, nil)

	return c.JSON(mapper.ToItemDetailDTO(detail))
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid item ID"})
	}

	var req struct {
		Name        *string     `json:"name"`
		Description *string     `json:"description"`
		Quantity    *int        `json:"quantity"`
		Condition   *string     `json:"condition"`
		LocationID  *uuid.UUID  `json:"location_id"`
		CategoryID  *uuid.UUID  `json:"category_id"`
		TagIDs      []uuid.UUID `json:"tag_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	params := services.ItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		LocationID:  req.LocationID,
		SetLocation: bodyHasField(c.Body(), "location_id"),
		CategoryID:  req.CategoryID,
		SetCategory: bodyHasField(c.Body(), "category_id"),
		TagIDs:      req.TagIDs,
		SetTags:     bodyHasField(c.Body(), "tag_ids"),
	}
	if req.Condition != nil {
		condition := models.Condition(*req.Condition)
		if !condition.Valid() {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid condition"})
		}
		params.Condition = &condition
	}

	item, err := h.itemService.UpdateItem(CurrentUser(c), id, params)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid item ID"})
	}
	if err := h.itemService.DeleteItem(CurrentUser(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	filter := repository.ItemFilter{
		Condition: c.Query("condition"),
		Search:    c.Query("search"),
		Sort:      c.Query("sort"),
	}
	if v := c.Query("location_id"); v != "" {
		locationID, err := uuid.Parse(v)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid location ID"})
		}
		filter.LocationID = &locationID
	}
	if v := c.Query("category_id"); v != "" {
		categoryID, err := uuid.Parse(v)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid category ID"})
		}
		filter.CategoryID = &categoryID
	}
	if v := c.Query("tag_id"); v != "" {
		tagID, err := uuid.Parse(v)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid tag ID"})
		}
		filter.TagID = &tagID
	}

	items, err := h.itemService.ListItems(CurrentUser(c), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(mapper.ToItemsGetDTOs(items))
}

func (h *ItemHandler) GetItemLogs(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid item ID"})
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	logs, err := h.itemService.ItemLogs(CurrentUser(c), id, limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(mapper.ToItemLogDTOs(logs))
}
