package routers

import (
	"Stash/cmd"
	"Stash/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRouter(app *fiber.App, server *cmd.Server) {
	authHandler := server.AuthHandler
	app.Post("/auth/token", authHandler.ObtainToken)
	app.Post("/auth/refresh", handlers.RequireAuth(), authHandler.RefreshToken)
	app.Post("/auth/revoke", handlers.RequireAuth(), authHandler.RevokeToken)
	app.Get("/auth/info", handlers.RequireAuth(), authHandler.TokenInfo)
}
