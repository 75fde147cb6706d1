package routers

import (
	"Stash/cmd"
	"Stash/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupLocationRouter(app *fiber.App, server *cmd.Server) {
	locationHandler := server.LocationHandler
	shareHandler := server.ShareHandler

	locations := app.Group("/locations", handlers.RequireAuth())
	locations.Get("/", locationHandler.ListLocations)
	locations.Post("/", locationHandler.CreateLocation)
	locations.Get("/:id", locationHandler.GetLocation)
	locations.Put("/:id", locationHandler.UpdateLocation)
	locations.Delete("/:id", locationHandler.DeleteLocation)
	locations.Get("/:id/children", locationHandler.GetLocationChildren)
	locations.Get("/:id/items", locationHandler.GetLocationItems)
	locations.Get("/:id/breadcrumbs", locationHandler.GetBreadcrumbs)
	locations.Get("/:id/shares", shareHandler.ListLocationShares)
	locations.Post("/:id/shares", shareHandler.ShareLocation)
	locations.Delete("/:id/shares/:userId", shareHandler.UnshareLocation)
}
