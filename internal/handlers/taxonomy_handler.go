package handlers

import (
	"Stash/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TaxonomyHandler struct {
	taxonomyService services.TaxonomyService
}

func NewTaxonomyHandler(taxonomyService services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

func (h *TaxonomyHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.taxonomyService.ListCategories()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(categories)
}

func (h *TaxonomyHandler) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Color       string `json:"color"`
		Icon        string `json:"icon"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	category, err := h.taxonomyService.CreateCategory(req.Name, req.Description, req.Color, req.Icon)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusCreated).JSON(category)
}

func (h *TaxonomyHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid category ID"})
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Color       *string `json:"color"`
		Icon        *string `json:"icon"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	category, err := h.taxonomyService.UpdateCategory(id, req.Name, req.Description, req.Color, req.Icon)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(category)
}

func (h *TaxonomyHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid category ID"})
	}
	if err := h.taxonomyService.DeleteCategory(id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *TaxonomyHandler) ListTags(c *fiber.Ctx) error {
	tags, err := h.taxonomyService.ListTags()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(tags)
}

func (h *TaxonomyHandler) CreateTag(c *fiber.Ctx) error {
	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	tag, err := h.taxonomyService.CreateTag(req.Name, req.Color)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusCreated).JSON(tag)
}

func (h *TaxonomyHandler) DeleteTag(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid tag ID"})
	}
	if err := h.taxonomyService.DeleteTag(id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
