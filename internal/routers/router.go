package routers

import (
	"Stash/cmd"
	"Stash/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	app.Use(handlers.AuthMiddleware(server.TokenService))

	SetupAuthRouter(app, server)
	SetupHomeRouter(app, server)
	SetupLocationRouter(app, server)
	SetupItemRouter(app, server)
	SetupTaxonomyRouter(app, server)
	SetupNotificationRouter(app, server)
	SetupJanitorRouter(app, server)
}
