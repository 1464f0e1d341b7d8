package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Msparihar/todo/interfaces/api/handlers"
)

func SetupTagRoutes(app *fiber.App, h *handlers.Handlers, protected fiber.Handler) {
	tags := app.Group("/tags")
	tags.Use(protected)
	tags.Get("/", h.TagHandler.List)
	tags.Post("/", h.TagHandler.Create)
	tags.Get("/:id", h.TagHandler.GetByID)
	tags.Put("/:id", h.TagHandler.Update)
	tags.Delete("/:id", h.TagHandler.Delete)
}
