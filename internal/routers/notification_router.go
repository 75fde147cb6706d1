package routers

import (
	"Stash/cmd"
	"Stash/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRouter(app *fiber.App, server *cmd.Server) {
	notificationHandler := server.NotificationHandler

	notifications := app.Group("/notifications", handlers.RequireAuth())
	notifications.Get("/", notificationHandler.ListNotifications)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Post("/read", notificationHandler.MarkRead)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
}
