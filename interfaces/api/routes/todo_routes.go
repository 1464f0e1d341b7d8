package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Msparihar/todo/interfaces/api/handlers"
)

func SetupTodoRoutes(app *fiber.App, h *handlers.Handlers, protected fiber.Handler) {
	todos := app.Group("/todos")
	todos.Use(protected)
	todos.Get("/", h.TodoHandler.List)
	todos.Post("/", h.TodoHandler.Create)
	todos.Get("/:id", h.TodoHandler.GetByID)
	todos.Put("/:id", h.TodoHandler.Update)
	todos.Delete("/:id", h.TodoHandler.Delete)
}
