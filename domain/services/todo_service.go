package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Msparihar/todo/domain/dto"
	"github.com/Msparihar/todo/domain/models"
	"github.com/Msparihar/todo/domain/repositories"
)

type TodoService interface {
	List(ctx context.Context, userID uuid.UUID, filter repositories.TodoFilter) ([]*models.Todo, error)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTodoRequest) (*models.Todo, error)
	GetByID(ctx context.Context, userID, todoID uuid.UUID) (*models.Todo, error)
	// Update applies a partial field merge and the completion transition rule,
	// then replaces the tag set when tag_ids was supplied.
	Update(ctx context.Context, userID, todoID uuid.UUID, req *dto.UpdateTodoRequest) (*models.Todo, error)
	Delete(ctx context.Context, userID, todoID uuid.UUID) error
}
