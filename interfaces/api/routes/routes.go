package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Msparihar/todo/interfaces/api/handlers"
)

// SetupRoutes registers all route groups. Paths are mounted at the root; the
// route layout is part of the API contract.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, protected fiber.Handler) {
	SetupHealthRoutes(app)
	SetupAuthRoutes(app, h, protected)
	SetupUserRoutes(app, h, protected)
	SetupProjectRoutes(app, h, protected)
	SetupTagRoutes(app, h, protected)
	SetupTodoRoutes(app, h, protected)
}
