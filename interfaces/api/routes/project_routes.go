package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Msparihar/todo/interfaces/api/handlers"
)

func SetupProjectRoutes(app *fiber.App, h *handlers.Handlers, protected fiber.Handler) {
	projects := app.Group("/projects")
	projects.Use(protected)
	projects.Get("/", h.ProjectHandler.List)
	projects.Post("/", h.ProjectHandler.Create)
	projects.Get("/:id", h.ProjectHandler.GetByID)
	projects.Put("/:id", h.ProjectHandler.Update)
	projects.Delete("/:id", h.ProjectHandler.Delete)
}
