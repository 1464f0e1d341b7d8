package handlers

import (
	"github.com/Msparihar/todo/domain/services"
)

// Handlers aggregates the HTTP handlers for route registration.
type Handlers struct {
	UserHandler    *UserHandler
	ProjectHandler *ProjectHandler
	TagHandler     *TagHandler
	TodoHandler    *TodoHandler
}

type Services struct {
	UserService    services.UserService
	ProjectService services.ProjectService
	TagService     services.TagService
	TodoService    services.TodoService
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		UserHandler:    NewUserHandler(s.UserService),
		ProjectHandler: NewProjectHandler(s.ProjectService),
		TagHandler:     NewTagHandler(s.TagService),
		TodoHandler:    NewTodoHandler(s.TodoService),
	}
}
