package routers

import (
	"Stash/cmd"
	"Stash/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupItemRouter(app *fiber.App, server *cmd.Server) {
	itemHandler := server.ItemHandler
	shareHandler := server.ShareHandler

	items := app.Group("/items", handlers.RequireAuth())
	items.Get("/", itemHandler.ListItems)
	items.Post("/", itemHandler.CreateItem)
	items.Get("/:id", itemHandler.GetItem)
	items.Put("/:id", itemHandler.UpdateItem)
	items.Delete("/:id", itemHandler.DeleteItem)
	items.Get("/:id/logs", itemHandler.GetItemLogs)
	items.Get("/:id/shares", shareHandler.ListItemShares)
	items.Post("/:id/shares", shareHandler.ShareItem)
	items.Delete("/:id/shares/:userId", shareHandler.UnshareItem)
}
