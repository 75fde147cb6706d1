package routers

import (
	"Stash/cmd"
	"Stash/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupHomeRouter(app *fiber.App, server *cmd.Server) {
	homeHandler := server.HomeHandler
	app.Get("/home", handlers.RequireAuth(), homeHandler.Home)
	app.Get("/search", handlers.RequireAuth(), homeHandler.Search)
	app.Get("/rooms/:roomType", handlers.RequireAuth(), homeHandler.Room)
	app.Get("/analytics/summary", handlers.RequireAuth(), homeHandler.AnalyticsSummary)
}
