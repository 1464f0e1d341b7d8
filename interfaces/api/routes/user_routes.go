package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Msparihar/todo/interfaces/api/handlers"
)

func SetupUserRoutes(app *fiber.App, h *handlers.Handlers, protected fiber.Handler) {
	users := app.Group("/users")
	users.Use(protected)
	users.Get("/me", h.UserHandler.GetProfile)
	users.Put("/me", h.UserHandler.UpdateProfile)
	users.Put("/me/password", h.UserHandler.ChangePassword)
	users.Delete("/me", h.UserHandler.DeleteAccount)
}
