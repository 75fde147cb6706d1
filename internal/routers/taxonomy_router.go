package routers

import (
	"Stash/cmd"
	"Stash/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupTaxonomyRouter(app *fiber.App, server *cmd.Server) {
	taxonomyHandler := server.TaxonomyHandler

	categories := app.Group("/categories", handlers.RequireAuth())
	categories.Get("/", taxonomyHandler.ListCategories)
	categories.Post("/", taxonomyHandler.CreateCategory)
	categories.Put("/:id", taxonomyHandler.UpdateCategory)
	categories.Delete("/:id", taxonomyHandler.DeleteCategory)

	tags := app.Group("/tags", handlers.RequireAuth())
	tags.Get("/", taxonomyHandler.ListTags)
	tags.Post("/", taxonomyHandler.CreateTag)
	tags.Delete("/:id", taxonomyHandler.DeleteTag)
}
