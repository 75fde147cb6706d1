package handlers

import (
	"Stash/internal/mapper"
	"Stash/internal/models"
	"Stash/internal/repository"
	"Stash/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LocationHandler struct {
	locationService  services.LocationService
	analyticsService services.AnalyticsService
}

func NewLocationHandler(locationService services.LocationService, analyticsService services.AnalyticsService) *LocationHandler {
	return &LocationHandler{locationService: locationService, analyticsService: analyticsService}
}

func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	var req struct {
		Name     string     `json:"name"`
		RoomType string     `json:"room_type"`
		ParentID *uuid.UUID `json:"parent_id"`
		IsBox    bool       `json:"is_box"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	params := services.LocationCreate{
		Name:     req.Name,
		ParentID: req.ParentID,
		IsBox:    req.IsBox,
	}
	if req.RoomType != "" {
		roomType := models.RoomType(req.RoomType)
		if !roomType.Valid() {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid room type"})
		}
		params.RoomType = &roomType
	}

	location, err := h.locationService.CreateLocation(CurrentUser(c), params)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusCreated).JSON(location)
}

func (h *LocationHandler) GetLocation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid location ID"})
	}

	user := CurrentUser(c)
	detail, err := h.locationService.GetLocation(user, id)
	if err != nil {
		return errorResponse(c, err)
	}

	relatedType := models.RelatedLocation
	h.analyticsService.Track(user, models.EventViewLocation, &relatedType, &id, nil)

	return c.JSON(mapper.ToLocationDetailDTO(detail))
}

func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid location ID"})
	}

	var req struct {
		Name     *string    `json:"name"`
		RoomType *string    `json:"room_type"`
		ParentID *uuid.UUID `json:"parent_id"`
		IsBox    *bool      `json:"is_box"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	params := services.LocationUpdate{
		Name:  req.Name,
		IsBox: req.IsBox,
	}
	if req.RoomType != nil {
		roomType := models.RoomType(*req.RoomType)
		if !roomType.Valid() {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid room type"})
		}
		params.RoomType = &roomType
	}
	params.SetParent = bodyHasField(c.Body(), "parent_id")
	params.ParentID = req.ParentID

	location, err := h.locationService.UpdateLocation(CurrentUser(c), id, params)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(location)
}

func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid location ID"})
	}
	if err := h.locationService.DeleteLocation(CurrentUser(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *LocationHandler) ListLocations(c *fiber.Ctx) error {
	filter := repository.LocationFilter{
		RoomType: c.Query("room_type"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}
	if box := c.Query("is_box"); box != "" {
		isBox := box == "true" || box == "1"
		filter.IsBox = &isBox
	}

	locations, err := h.locationService.ListLocations(CurrentUser(c), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(mapper.ToLocationsGetDTOs(locations))
}

func (h *LocationHandler) GetLocationChildren(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid location ID"})
	}
	detail, err := h.locationService.GetLocation(CurrentUser(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(mapper.ToLocationsGetDTOs(detail.Children))
}

func (h *LocationHandler) GetLocationItems(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid location ID"})
	}
	detail, err := h.locationService.GetLocation(CurrentUser(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(mapper.ToItemsGetDTOs(detail.Items))
}

func (h *LocationHandler) GetBreadcrumbs(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid location ID"})
	}
	crumbs, err := h.locationService.Breadcrumbs(CurrentUser(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(mapper.ToLocationsGetDTOs(crumbs))
}
